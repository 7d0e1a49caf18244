// Command classpick copies the class files compiled from a Java source tree.
package main

import "github.com/mouse-blink/classpick/cmd"

func main() {
	cmd.Execute()
}
