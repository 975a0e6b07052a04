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
	"runtime"
	"sync/atomic"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"laptudirm.com/x/circle/pkg/circle"
)

const SPIN = 31

// circle verify
func Verify() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the schedules for a range of competitor counts",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`verify generates the plain and fair-break schedules for
			every competitor count from 0 up to --max, and checks that
			each of them is a valid round-robin: every pair meets
			exactly once and nobody plays twice in a round. Fair-break
			schedules are also checked to give every competitor the
			same number of breaks.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			maximum, _ := cmd.Flags().GetInt("max")
			jobs, _ := cmd.Flags().GetInt("jobs")
			if maximum < 0 || jobs < 1 {
				return fmt.Errorf("verify: invalid --max %d or --jobs %d", maximum, jobs)
			}

			s := spinner.New(
				spinner.CharSets[SPIN], 100*time.Millisecond,
				spinner.WithWriter(cmd.ErrOrStderr()),
			)
			s.Start() // Start the ~working~ spinner.
			checked, err := verifyRange(cmd, maximum, jobs)
			s.Stop()

			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\x1b[32mVerified\x1b[0m %d schedules for 0 to %d competitors\n", checked, maximum)
			return nil
		},
	}

	cmd.Flags().IntP("max", "m", 64, "Largest number of competitors to check")
	cmd.Flags().IntP("jobs", "j", runtime.NumCPU(), "Number of schedules to check concurrently")
	return cmd
}

// verifyRange verifies the schedules of 0 to maximum competitors in both
// modes, at most jobs at a time. It stops at the first invalid schedule.
func verifyRange(cmd *cobra.Command, maximum, jobs int) (int, error) {
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)

	var checked atomic.Int64
	for n := 0; n <= maximum; n++ {
		for _, mode := range []circle.Mode{circle.Plain, circle.FairBreak} {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				schedule, err := circle.New(n)
				if mode == circle.FairBreak {
					schedule, err = circle.NewWithFairBreak(n)
				}

				if err == nil {
					err = circle.Verify(schedule)
				}

				if err != nil {
					return fmt.Errorf("verify %d competitors (%v): %w", n, mode, err)
				}

				logrus.WithFields(logrus.Fields{
					"competitors": n,
					"mode":        mode,
				}).Trace("Schedule verified")

				checked.Add(1)
				return nil
			})
		}
	}

	err := g.Wait()
	return int(checked.Load()), err
}
