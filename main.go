// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/montymxb/FDSSL/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the FDSSL REPL, %s!\n", currentUser.Username)
	fmt.Println("Enter a function declaration per line, or :sample.")
	repl.Start(os.Stdin, os.Stdout)
}
