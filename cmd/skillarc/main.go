// Command skillarc shows the Neon Skill Arc: a radial football skill tree
// in the terminal, with a prompt composer that copies to the clipboard.
package main

import "github.com/papapumpkin/skillarc/cmd"

func main() {
	cmd.Execute()
}
