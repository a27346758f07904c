package main

import "github.com/frahmantamala/vehicle-ledger/cmd"

func main() {
	cmd.Execute()
}
