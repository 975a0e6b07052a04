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
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"laptudirm.com/x/circle/pkg/circle"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	breakStyle  = cellStyle.Foreground(lipgloss.Color("220"))
)

// circle breaks
func Breaks() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breaks competitors",
		Short: "Chart the home and away games of every competitor",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`breaks charts the side every competitor plays on in every
			round: h for home, a for away and - for a bye. The last
			row counts the breaks of every competitor, that is the
			number of times it plays on the same side twice in a row.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			schedule, err := parseSchedule(cmd, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), breakChart(schedule).Render())
			return nil
		},
	}

	cmd.Flags().BoolP("fair-break", "f", false, "Balance the home and away games")
	return cmd
}

func breakChart(schedule circle.Schedule) *table.Table {
	headers := []string{"Round"}
	for competitor := 0; competitor < schedule.Competitors(); competitor++ {
		headers = append(headers, strconv.Itoa(competitor))
	}

	var rows [][]string
	for round, roles := range circle.Roles(schedule) {
		row := []string{strconv.Itoa(round + 1)}
		for _, role := range roles {
			row = append(row, role.String())
		}

		rows = append(rows, row)
	}

	breaks := []string{"Breaks"}
	for _, count := range circle.Breaks(schedule) {
		breaks = append(breaks, strconv.Itoa(count))
	}
	rows = append(rows, breaks)

	last := len(rows) - 1
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch row {
			case table.HeaderRow:
				return headerStyle
			case last:
				return breakStyle
			default:
				return cellStyle
			}
		})
}
