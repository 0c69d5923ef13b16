// Command cliquemine mines relaxed-clique subgraphs (k-plex,
// k-defective clique, gamma-quasi-clique, gamma-pseudo-clique) from a
// graph file or directory, or converts one graph format to another.
package main

import "github.com/katalvlaran/cliquemine/cmd/cliquemine/cmd"

func main() {
	cmd.Execute()
}
