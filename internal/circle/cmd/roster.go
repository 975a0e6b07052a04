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

	"github.com/spf13/cobra"

	"laptudirm.com/x/circle/pkg/league"
)

func Roster() *cobra.Command {
	cmd := cobra.Command{
		Use:   "roster",
		Short: "Manage saved league rosters",
	}

	cmd.AddCommand(rosterSave())
	cmd.AddCommand(rosterList())
	return &cmd
}

// circle roster save
func rosterSave() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save name team team...",
		Short: "Save a roster under the given name",
		Args:  cobra.MinimumNArgs(3),

		RunE: func(cmd *cobra.Command, args []string) error {
			roster := league.Roster{Name: args[0], Teams: args[1:]}
			roster.Event, _ = cmd.Flags().GetString("event")
			roster.Site, _ = cmd.Flags().GetString("site")
			roster.FairBreak, _ = cmd.Flags().GetBool("fair-break")

			if err := roster.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\x1b[32mSaved Roster:\x1b[0m %s (%d teams)\n", roster.Name, len(roster.Teams))
			return nil
		},
	}

	cmd.Flags().StringP("event", "e", "", "Name of the event")
	cmd.Flags().StringP("site", "s", "", "Site of the event")
	cmd.Flags().BoolP("fair-break", "f", false, "Balance the home and away games")
	return cmd
}

// circle roster list
func rosterList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the saved rosters",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := league.List()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(names) == 0 {
				fmt.Fprintln(w, "\x1b[31mNo Rosters Saved.\x1b[0m")
				return nil
			}

			fmt.Fprintln(w, "\x1b[32mSaved Rosters\x1b[0m:")
			for _, name := range names {
				roster, err := league.Load(name)
				if err != nil {
					fmt.Fprintf(w, "- \x1b[31m%-20s\x1b[0m %v\n", name, err)
					continue
				}

				fmt.Fprintf(w, "- \x1b[34m%-20s\x1b[0m %d teams\n", name, len(roster.Teams))
			}

			return nil
		},
	}
}
