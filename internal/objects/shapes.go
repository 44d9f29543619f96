package objects

import (
	"encoding/json"

	"github.com/cklewar/regressci/pkg/config"
)

// This file types the per-module config.json shapes named in SPEC_FULL.md
// §3 "Entity essentials" and §6 "Module config". moduleconfig.Loader hands
// back an untyped map[string]any (mirroring the original's serde_json::Value);
// decodeInto re-marshals it into one of these structs, the idiomatic Go
// substitute for serde's typed deserialization.

func decodeInto(m map[string]any, out any) error {
	if m == nil {
		return nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// ScriptDecl names a single script file and the logical name it is
// addressed by in a render context.
type ScriptDecl struct {
	Script string `json:"script"`
	File   string `json:"file"`
}

// SiteDecl is one entry of an Eut's sites list. Count>1 expands to
// name_1..name_n (see ExpandSites).
type SiteDecl struct {
	Name     string `json:"name"`
	Count    int    `json:"count"`
	Provider string `json:"provider"`
}

// EutModuleConfig is the per-module eut/<module>/config.json shape.
type EutModuleConfig struct {
	Name         string         `json:"name"`
	Release      string         `json:"release"`
	Providers    []string       `json:"providers"`
	Sites        []SiteDecl     `json:"sites"`
	Features     []string       `json:"features"`
	Rtes         []string       `json:"rtes"`
	Collectors   []string       `json:"collectors"`
	Applications []string       `json:"applications"`
	Reports      []string       `json:"reports"`
	Dashboard    map[string]any `json:"dashboard,omitempty"`
	Ci           config.Ci      `json:"ci"`
	ScriptsPath  string         `json:"scripts_path"`
	Scripts      []ScriptDecl   `json:"scripts"`
}

// ComponentDecl is one entry under an RTE module's components.{src,dst}.
type ComponentDecl struct {
	Name        string       `json:"name"`
	ScriptsPath string       `json:"scripts_path"`
	Scripts     []ScriptDecl `json:"scripts"`
}

// ComponentsDecl groups the source/destination component declarations of
// an RTE module.
type ComponentsDecl struct {
	Src []ComponentDecl `json:"src"`
	Dst []ComponentDecl `json:"dst"`
}

// ConnectionDecl is one entry of an RTE module's connections list.
type ConnectionDecl struct {
	Name         string   `json:"name"`
	Source       string   `json:"source"`
	Destinations []string `json:"destinations"`
	Tests        []string `json:"tests"`
}

// RteModuleConfig is the per-module rte/<module>/config.json shape.
type RteModuleConfig struct {
	Name        string           `json:"name"`
	Module      string           `json:"module"`
	Type        string           `json:"type"`
	Release     string           `json:"release"`
	Provider    string           `json:"provider"`
	Connections []ConnectionDecl `json:"connections"`
	Components  ComponentsDecl   `json:"components"`
	Ci          config.Ci        `json:"ci"`
	ScriptsPath string           `json:"scripts_path"`
	Scripts     []ScriptDecl     `json:"scripts"`
}

const (
	RteTypeA = "rte_type_a"
	RteTypeB = "rte_type_b"
)

// TestModuleConfig is the per-module tests/<module>/config.json shape.
type TestModuleConfig struct {
	Name          string       `json:"name"`
	Module        string       `json:"module"`
	Parallel      bool         `json:"parallel"`
	Data          string       `json:"data"`
	Refs          []string     `json:"refs"`
	Collector     string       `json:"collector"`
	Verifications []string     `json:"verifications"`
	Ci            config.Ci    `json:"ci"`
	ScriptsPath   string       `json:"scripts_path"`
	Scripts       []ScriptDecl `json:"scripts"`
}

// VerificationModuleConfig is the per-module verifications/<module>/config.json shape.
type VerificationModuleConfig struct {
	Name        string       `json:"name"`
	Module      string       `json:"module"`
	Data        string       `json:"data"`
	Refs        []string     `json:"refs"`
	Ci          config.Ci    `json:"ci"`
	ScriptsPath string       `json:"scripts_path"`
	Scripts     []ScriptDecl `json:"scripts"`
}

// FeatureModuleConfig is the per-module features/<module>/config.json shape.
type FeatureModuleConfig struct {
	Name        string       `json:"name"`
	Module      string       `json:"module"`
	Release     string       `json:"release"`
	Data        string       `json:"data"`
	Sites       []string     `json:"sites"`
	Ci          config.Ci    `json:"ci"`
	ScriptsPath string       `json:"scripts_path"`
	Scripts     []ScriptDecl `json:"scripts"`
}

// CollectorModuleConfig is the per-module collectors/<module>/config.json shape.
type CollectorModuleConfig struct {
	Name        string       `json:"name"`
	Module      string       `json:"module"`
	Data        string       `json:"data"`
	Refs        []string     `json:"refs"`
	ScriptsPath string       `json:"scripts_path"`
	Scripts     []ScriptDecl `json:"scripts"`
}

// ReportModuleConfig is the per-module reports/<module>/config.json shape.
type ReportModuleConfig struct {
	Name        string       `json:"name"`
	Module      string       `json:"module"`
	Data        string       `json:"data"`
	Collector   string       `json:"collector"`
	Refs        []string     `json:"refs"`
	ScriptsPath string       `json:"scripts_path"`
	Scripts     []ScriptDecl `json:"scripts"`
}

// ApplicationModuleConfig is the per-module applications/<module>/config.json shape.
type ApplicationModuleConfig struct {
	Name        string       `json:"name"`
	Module      string       `json:"module"`
	Release     string       `json:"release"`
	Provider    string       `json:"provider"`
	Refs        []string     `json:"refs"`
	ScriptsPath string       `json:"scripts_path"`
	Scripts     []ScriptDecl `json:"scripts"`
}
