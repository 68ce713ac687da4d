package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// commonExtensions are offered for --extension completion.
var commonExtensions = []string{".ts", ".component.ts", ".tsx"}

// completeRootPath completes the optional [root] argument with directories.
func completeRootPath(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveFilterDirs
}

// completeExtensions provides shell completion for --extension values.
func completeExtensions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, ext := range commonExtensions {
		if strings.HasPrefix(ext, toComplete) {
			matches = append(matches, ext)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
