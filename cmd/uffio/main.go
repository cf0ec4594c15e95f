/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/modalkit/uffio/cmd/uffio/cmd"
)

func main() {
	cmd.Execute()
}
