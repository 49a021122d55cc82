/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/vivek-dahikar/AutoRegisterAgent/cmd"

func main() {
	cmd.Execute()
}
