// Package chain runs ordered text transformations built from textx and
// hexx operations.
//
// A chain is assembled from a config.Recipe or by hand:
//
//	recipe, err := config.LoadRecipe("normalize.toml")
//	if err != nil {
//		return err
//	}
//	c, err := chain.FromRecipe(recipe, nil)
//	if err != nil {
//		return err
//	}
//	res, err := c.Run(textx.New("  a,b,,c  "))
//
// Every run is tagged with a fresh UUID, reported as Result.RunID, used as
// request ID on log entries, and attached to the error of a failing step.
// See Ops for the operation names a recipe may use.
package chain
