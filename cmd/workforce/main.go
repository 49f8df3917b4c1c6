// @title           Terceirização API
// @version         1.0
// @description     Records of a workforce outsourcing business: companies, clients, roles, employees, attendance, medical certificates and leaves.
// @BasePath        /
// @schemes         http https
package main

import (
	"fmt"
	"os"

	_ "github.com/workforcepro/terceirizacao-api/docs"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
