// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/circle/pkg/circle"
)

// circle pairs
func Pairs() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pairs competitors",
		Short: "Print the raw pairings of a round-robin",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`pairs prints the schedule of a single round-robin between
			the given number of competitors, one round per line. The
			competitors are numbered from 0.

			With --fair-break the first competitor of every pair plays
			at home, and the home and away games of every competitor
			are spread so that everyone has the same number of breaks.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			schedule, err := parseSchedule(cmd, args[0])
			if err != nil {
				return err
			}

			printPairs(cmd.OutOrStdout(), schedule)
			return nil
		},
	}

	cmd.Flags().BoolP("fair-break", "f", false, "Balance the home and away games")
	return cmd
}

func printPairs(w io.Writer, schedule circle.Schedule) {
	for round, games := range schedule.EachRound() {
		pairs := make([]string, len(games))
		for i, game := range games {
			pairs[i] = fmt.Sprintf("%d-%d", game.First, game.Second)
		}

		line := fmt.Sprintf("\x1b[32mRound %d\x1b[0m: %s", round+1, strings.Join(pairs, " "))
		if bye, found := schedule.Bye(round); found {
			line += fmt.Sprintf(" \x1b[33mbye %d\x1b[0m", bye)
		}

		fmt.Fprintln(w, line)
	}
}

// parseSchedule builds the schedule for the competitor count given on the
// command line, in the mode selected by the --fair-break flag.
func parseSchedule(cmd *cobra.Command, arg string) (circle.Schedule, error) {
	n, err := parseCount(arg)
	if err != nil {
		return circle.Schedule{}, err
	}

	fairBreak, _ := cmd.Flags().GetBool("fair-break")
	logrus.WithFields(logrus.Fields{
		"competitors": n,
		"fair-break":  fairBreak,
	}).Debug("Building schedule")

	if fairBreak {
		return circle.NewWithFairBreak(n)
	}

	return circle.New(n)
}

// parseCount converts a command line argument into a competitor count.
// Integral decimals like "8.0" are accepted, just like by circle.Count.
func parseCount(arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		return circle.Count(n)
	}

	if f, err := strconv.ParseFloat(arg, 64); err == nil {
		return circle.Count(f)
	}

	return 0, fmt.Errorf("%w: %q", circle.ErrInvalidType, arg)
}
