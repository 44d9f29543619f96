package objects

import "fmt"

// typeBStrategy wires each connection's source side under the RTE's single
// active provider, without fanning out to matched destination sites: no
// ConnectionDst or ComponentDst is created, and no later pass synthesizes a
// destination site for these connections. Grounded on
// original_source/src/objects/rte.rs's rte_type_b branch.
type typeBStrategy struct{}

func (typeBStrategy) Kind() string { return RteTypeB }

func (typeBStrategy) Wire(ctx *WireCtx, rte *Rte) error {
	conns, err := InitConnections(ctx.Graph, rte)
	if err != nil {
		return err
	}
	components, err := InitComponents(ctx.Graph, rte)
	if err != nil {
		return err
	}

	srcDecl, err := resolveComponentDecl(rte.ModuleCfg.Components.Src, "src")
	if err != nil {
		return fmt.Errorf("rte %q (type_b): %w", rte.ModuleCfg.Module, err)
	}

	provider := rte.ModuleCfg.Provider
	if _, err := ctx.rteProviderFor(components, provider); err != nil {
		return err
	}

	for ci, decl := range rte.ModuleCfg.Connections {
		conn, err := InitConnection(ctx.Graph, conns, ci, decl.Name)
		if err != nil {
			return err
		}

		srcSite, err := ctx.findOrCreateSite(decl.Source, provider)
		if err != nil {
			return err
		}
		csrc, err := InitConnectionSrc(ctx.Graph, conn, srcSite, rte)
		if err != nil {
			return err
		}
		srcComp, err := InitComponentSrc(ctx.Graph, components, ci, srcDecl, provider)
		if err != nil {
			return err
		}
		if err := csrc.WireComponentSrc(ctx.Graph, srcComp); err != nil {
			return err
		}

		if err := wireTestsAndVerifications(ctx, csrc, rte, provider, decl.Tests); err != nil {
			return err
		}
	}
	return nil
}
