package main

import "github.com/mushna03-prog/e-Laporan-Kokurikulum/cmd"

func main() {
	cmd.Execute()
}
