// Command tweenkit authors GSAP animations and exports them as script or JSON.
package main

import "github.com/mesh-intelligence/tweenkit/internal/cli"

func main() {
	cli.Execute()
}
