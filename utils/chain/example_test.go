package chain_test

import (
	"fmt"

	"github.com/msto63/stringext/core/config"
	"github.com/msto63/stringext/core/log"
	"github.com/msto63/stringext/utils/chain"
	"github.com/msto63/stringext/utils/textx"
)

func ExampleFromRecipe() {
	recipe, err := config.ParseRecipe(`
name = "banner"

[[steps]]
op = "trim"

[[steps]]
op = "upper"

[[steps]]
op = "center_justify"
width = 11
fill = "*"
`, config.FormatTOML)
	if err != nil {
		fmt.Println(err)
		return
	}

	c, err := chain.FromRecipe(recipe, log.Discard())
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := c.Run(textx.New("  hello "))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Output)
	fmt.Println(res.Applied)
	// Output:
	// ***HELLO***
	// [trim upper center_justify]
}
