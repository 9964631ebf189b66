package main

import "github.com/seipan/bstree/cmd/bstree"

func main() {
	bstree.Execute()
}
