// ABOUTME: Entry point for the textlens command line tool
// ABOUTME: Runs one analysis over typed, file or fetched text and prints a report

package main

func main() {
	Execute()
}
