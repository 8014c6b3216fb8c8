package main

import (
	"github.com/yubetsu/cite/cmd"

	// Register style plugins
	_ "github.com/yubetsu/cite/style/ama"
	_ "github.com/yubetsu/cite/style/apa"
	_ "github.com/yubetsu/cite/style/bibtex"
	_ "github.com/yubetsu/cite/style/chicago"
	_ "github.com/yubetsu/cite/style/ieee"
	_ "github.com/yubetsu/cite/style/mla"
	_ "github.com/yubetsu/cite/style/nlm"
)

func main() {
	cmd.Execute()
}
