package main

import "technopedia-registration/cmd"

func main() {
	cmd.Execute()
}
