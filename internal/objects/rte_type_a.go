package objects

import "fmt"

// typeAStrategy fans a connection's source out to every EUT site matching
// its destination regexes, wiring one ConnectionDst (and its own
// ComponentDst) per match. Grounded on original_source/src/objects/rte.rs's
// rte_type_a branch.
type typeAStrategy struct{}

func (typeAStrategy) Kind() string { return RteTypeA }

func (typeAStrategy) Wire(ctx *WireCtx, rte *Rte) error {
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
		return fmt.Errorf("rte %q (type_a): %w", rte.ModuleCfg.Module, err)
	}
	dstDecl, err := resolveComponentDecl(rte.ModuleCfg.Components.Dst, "dst")
	if err != nil {
		return fmt.Errorf("rte %q (type_a): %w", rte.ModuleCfg.Module, err)
	}

	for ci, decl := range rte.ModuleCfg.Connections {
		conn, err := InitConnection(ctx.Graph, conns, ci, decl.Name)
		if err != nil {
			return err
		}

		srcSite, ok := ctx.findSite(decl.Source)
		if !ok {
			return fmt.Errorf("connection %q: source site %q not declared on eut", decl.Name, decl.Source)
		}
		csrc, err := InitConnectionSrc(ctx.Graph, conn, srcSite, rte)
		if err != nil {
			return err
		}
		if _, err := ctx.rteProviderFor(components, srcSite.Provider); err != nil {
			return err
		}
		srcComp, err := InitComponentSrc(ctx.Graph, components, ci, srcDecl, srcSite.Provider)
		if err != nil {
			return err
		}
		if err := csrc.WireComponentSrc(ctx.Graph, srcComp); err != nil {
			return err
		}

		var matched []*Site
		for _, pattern := range decl.Destinations {
			m, err := matchDestinations(pattern, ctx.AllSites)
			if err != nil {
				return fmt.Errorf("connection %q: %w", decl.Name, err)
			}
			matched = append(matched, m...)
		}
		for di, dstSite := range matched {
			cdst, err := InitConnectionDst(ctx.Graph, csrc, di, dstSite, rte)
			if err != nil {
				return err
			}
			if _, err := ctx.rteProviderFor(components, dstSite.Provider); err != nil {
				return err
			}
			dstComp, err := InitComponentDst(ctx.Graph, components, di, dstDecl, dstSite.Provider)
			if err != nil {
				return err
			}
			if err := cdst.WireComponentDst(ctx.Graph, dstComp); err != nil {
				return err
			}
		}

		if err := wireTestsAndVerifications(ctx, csrc, rte, srcSite.Provider, decl.Tests); err != nil {
			return err
		}
	}
	return nil
}
