package cli

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Canx/algos/search"
)

// searchCommand creates the search command, which looks up integer keys in a
// sorted array and prints one line per key.
func (c *CLI) searchCommand() *cobra.Command {
	in := []int{1, 5, 35, 112, 258, 324}

	cmd := &cobra.Command{
		Use:   "search [key...]",
		Short: "Binary-search keys in a sorted array",
		Long: `Looks up each key in the sorted --in array and prints its index.
Without keys it searches 1, 35, 112, 324 and 67.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := []int{1, 35, 112, 324, 67}
			if len(args) > 0 {
				keys = make([]int, len(args))
				for i, a := range args {
					k, err := strconv.Atoi(a)
					if err != nil {
						return fmt.Errorf("key %q: %w", a, err)
					}
					keys[i] = k
				}
			}
			if !slices.IsSorted(in) {
				return fmt.Errorf("--in must be sorted ascending: %v", in)
			}
			loggerFromContext(cmd.Context()).Debug("searching", "keys", len(keys), "array", len(in))

			w := cmd.OutOrStdout()
			th := newTheme(w)
			for _, k := range keys {
				var line string
				if pos := search.Index(in, k); pos != search.NotFound {
					line = fmt.Sprintf("%d-> %s %d", k, th.success.Render("found at index :"), pos)
				} else {
					line = fmt.Sprintf("%d-> %s", k, th.dim.Render("not found"))
				}
				if _, err := fmt.Fprintln(w, line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&in, "in", in, "sorted array to search")
	return cmd
}
