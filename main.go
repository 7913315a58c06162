package main

import "github.com/faturaquick/fatura-cli/cmd"

func main() {
	cmd.Execute()
}
