package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seuros/cypher-dsl/src/cypher"
)

// demoCmd builds a statement through the programmatic API and prints it,
// mostly useful as a smoke check for the toolchain.
func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Render a sample statement built with the programmatic API",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := buildDemoQuery()
			if err != nil {
				return err
			}
			opts, err := loadRenderOptions(configPath)
			if err != nil {
				return err
			}
			out, err := cypher.RenderWithOptions(q, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func buildDemoQuery() (*cypher.Query, error) {
	knows := cypher.MustPath(
		cypher.Node("p", "Person"),
		cypher.TypedRel(cypher.DirectionRight, "KNOWS"),
		cypher.Node("f", "Person"),
	)

	q, err := cypher.Match(knows)
	if err != nil {
		return nil, err
	}
	q, err = q.Where(cypher.Prop("f", "age").Gte(cypher.Param("min_age")))
	if err != nil {
		return nil, err
	}
	q, err = q.Return(
		cypher.As(cypher.Prop("p", "name"), "person"),
		cypher.As(cypher.Func("count", cypher.Var("f")), "friends"),
	)
	if err != nil {
		return nil, err
	}
	q, err = q.OrderBy(cypher.Desc(cypher.Var("friends")))
	if err != nil {
		return nil, err
	}
	return q.Limit(cypher.Lit(10))
}
