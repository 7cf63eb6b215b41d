// Command vitae shows a personal profile page in the terminal.
package main

import "github.com/papapumpkin/vitae/cmd"

func main() {
	cmd.Execute()
}
