// Command collide is a small diagnostic CLI for driving the collision
// core against a scene file from the command line, without writing a Go
// program for every one-off check.
package main

func main() {
	Execute()
}
