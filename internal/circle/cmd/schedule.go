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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/circle/pkg/league"
)

// circle schedule
func Schedule() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule roster",
		Short: "Print the pairings of a league",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`schedule prints the round-robin pairings of the teams in
			the given roster, which is either the path to a roster file
			or the name of a roster saved with 'circle roster save'.

			A roster file is a yaml file listing the teams:

			    name: club
			    fair-break: true
			    teams: [Alekhine, Botvinnik, Capablanca, Euwe]

			The team listed first in every game plays white (or at
			home). The --fair-break flag overrides the roster's setting.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			roster, err := league.Find(args[0])
			if err != nil {
				return err
			}

			if cmd.Flag("fair-break").Changed {
				roster.FairBreak, _ = cmd.Flags().GetBool("fair-break")
			}

			rounds, err := league.Pairings(roster)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "\x1b[92mLeague:\x1b[0m %s", roster.Name)
			if roster.Event != "" {
				fmt.Fprintf(w, " (%s)", roster.Event)
			}
			fmt.Fprintln(w)

			for _, round := range rounds {
				fmt.Fprintf(w, "\n\x1b[32mRound %d\x1b[0m\n", round.Number)
				for _, game := range round.Games {
					fmt.Fprintf(w, "  Board %d: %-20s vs %s\n", game.Board, game.White(), game.Black())
				}

				if round.Bye != "" {
					fmt.Fprintf(w, "  \x1b[33mBYE\x1b[0m: %s\n", round.Bye)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolP("fair-break", "f", false, "Balance the home and away games")
	return cmd
}
