package obf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/veilforge/obf/internal/bijection"
	"github.com/veilforge/obf/internal/diagnostics"
	"github.com/veilforge/obf/internal/obfctx"
	"github.com/veilforge/obf/internal/rng"
	"github.com/veilforge/obf/internal/tree"
)

// widthedKey appends width to a site key. A generic helper that calls V/L
// at more than one instantiation of T still compiles down to one source
// line for every instantiation, so width has to be part of what
// distinguishes one site's memoization entry from another's.
func widthedKey(key string, width bijection.Width) string {
	return key + ":" + strconv.Itoa(int(width))
}

// buildSite resolves the Node for one call site: it computes the site's
// key once, then memoizes everything else behind it (spec.md §4.6's
// "built once, at first use"). Debug pass-through mode (no seed
// configured) still memoizes, to the identity node, so a reconfigured
// process never sees a site flip from identity to a real tree mid-run.
func buildSite(width bijection.Width, ctx obfctx.Context, e int, skip int, sub int) bijection.Node {
	key := widthedKey(siteKey(skip+1, sub), width)
	return siteFor(key).build(func() bijection.Node {
		cfg := currentConfig()
		if !cfg.Configured {
			return bijection.Identity()
		}

		seed := siteSeed(cfg.Seed, key)
		budget := tierBudget(e, cfg.Scale)
		consts := globalConstants(cfg.Seed)

		node := buildWithRecover(width, ctx, consts, rng.State(seed), budget)
		diagnostics.SiteBuilt(key, "", ctx.Name(), int(width), budget)
		return node
	})
}

// buildLiteralSite is buildSite's counterpart for Literal/String sites: it
// also picks which of the five literal contexts (spec.md §4.3) wraps the
// site, weighted by the same budget the catalog dispatch then draws from.
func buildLiteralSite(width bijection.Width, e int, skip int, sub int) bijection.Node {
	key := widthedKey(siteKey(skip+1, sub), width)
	return siteFor(key).build(func() bijection.Node {
		cfg := currentConfig()
		if !cfg.Configured {
			return bijection.Identity()
		}

		seed := siteSeed(cfg.Seed, key)
		budget := tierBudget(e, cfg.Scale)
		consts := globalConstants(cfg.Seed)

		var ctx obfctx.Context
		if cfg.AntiDebug {
			ctx = obfctx.NewAntiDebug()
		} else {
			ctx = obfctx.ChooseLiteralContext(rng.State(seed), width, budget, consts)
		}

		node := buildWithRecover(width, ctx, consts, rng.State(seed).Step(), budget)
		diagnostics.SiteBuilt(key, "", ctx.Name(), int(width), budget)
		return node
	})
}

// buildWithRecover calls tree.Build and turns a recovered internal panic
// into one carrying the matching public sentinel error, so callers that
// recover at a higher level can use errors.Is against ErrUnsatisfiableBudget
// or ErrMutatingInvariantViolated instead of internal package panic text.
func buildWithRecover(width bijection.Width, ctx obfctx.Context, consts rng.Constants, seed rng.State, budget int) (node bijection.Node) {
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprint(r)
			switch {
			case strings.Contains(msg, "no bijection version satisfies"):
				panic(fmt.Errorf("%w: %s", ErrUnsatisfiableBudget, msg))
			case strings.Contains(msg, "mutating-global invariant"):
				panic(fmt.Errorf("%w: %s", ErrMutatingInvariantViolated, msg))
			default:
				panic(r)
			}
		}
	}()
	return tree.Build(width, ctx, consts, seed, budget)
}
