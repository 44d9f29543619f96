package graphmodel

// VertexKind is one of the closed set of entity kinds the generator can
// instantiate. Strings match the original tool's vertex-type constants so
// that id_path segments and gv labels read the same way.
type VertexKind string

const (
	KindProject          VertexKind = "project"
	KindCi               VertexKind = "ci"
	KindEut              VertexKind = "eut"
	KindRte              VertexKind = "rte"
	KindRtes             VertexKind = "rtes"
	KindTest             VertexKind = "test"
	KindSite             VertexKind = "site"
	KindSites            VertexKind = "sites"
	KindShare            VertexKind = "share"
	KindScript           VertexKind = "script"
	KindScripts          VertexKind = "scripts"
	KindFeature          VertexKind = "feature"
	KindFeatures         VertexKind = "features"
	KindCollector        VertexKind = "collector"
	KindCollectors       VertexKind = "collectors"
	KindProviders        VertexKind = "providers"
	KindComponents       VertexKind = "components"
	KindConnection       VertexKind = "connection"
	KindConnections      VertexKind = "connections"
	KindEutProvider      VertexKind = "eut_provider"
	KindRteProvider      VertexKind = "rte_provider"
	KindDashboardProv    VertexKind = "dashboard_provider"
	KindStageDeploy      VertexKind = "stage_deploy"
	KindStageDestroy     VertexKind = "stage_destroy"
	KindComponentSrc     VertexKind = "component_src"
	KindComponentDst     VertexKind = "component_dst"
	KindConnectionSrc    VertexKind = "connection_src"
	KindConnectionDst    VertexKind = "connection_dst"
	KindVerification     VertexKind = "verification"
	KindApplication      VertexKind = "application"
	KindApplications     VertexKind = "applications"
	KindReport           VertexKind = "report"
	KindDashboard        VertexKind = "dashboard"
)

// EdgeKind is one of the closed set of relation kinds. The pair of endpoint
// vertex kinds determines the edge kind; callers never choose it directly.
type EdgeKind string

const (
	EdgeHas               EdgeKind = "has"
	EdgeHasCi             EdgeKind = "has_ci"
	EdgeHasEut            EdgeKind = "has_eut"
	EdgeHasSites          EdgeKind = "has_sites"
	EdgeHasSite           EdgeKind = "has_site"
	EdgeUsesRtes          EdgeKind = "uses_rtes"
	EdgeProvidesRte       EdgeKind = "provides_rte"
	EdgeHasFeatures       EdgeKind = "has_features"
	EdgeHasFeature        EdgeKind = "has_feature"
	EdgeHasProviders      EdgeKind = "has_providers"
	EdgeProvidesProvider  EdgeKind = "provides_provider"
	EdgeUsesProvider      EdgeKind = "uses_provider"
	EdgeNeedsProvider     EdgeKind = "needs_provider"
	EdgeHasComponents     EdgeKind = "has_components"
	EdgeHasComponentSrc   EdgeKind = "has_component_src"
	EdgeHasComponentDst   EdgeKind = "has_component_dst"
	EdgeHasConnections    EdgeKind = "has_connections"
	EdgeHasConnection     EdgeKind = "has_connection"
	EdgeHasConnectionSrc  EdgeKind = "has_connection_src"
	EdgeHasConnectionDst  EdgeKind = "has_connection_dst"
	EdgeRefersSite        EdgeKind = "refers_site"
	EdgeSiteRefersRte     EdgeKind = "site_refers_rte"
	EdgeFeatureRefersSite EdgeKind = "feature_refers_site"
	EdgeRuns              EdgeKind = "runs"
	EdgeNeeds             EdgeKind = "needs"
	EdgeNeedsShare        EdgeKind = "needs_share"
	EdgeNextStage         EdgeKind = "next_stage"
	EdgeHasDeployStages   EdgeKind = "has_deploy_stages"
	EdgeHasDestroyStages  EdgeKind = "has_destroy_stages"
	EdgeTestRefersCollector   EdgeKind = "test_refers_collector"
	EdgeReportRefersCollector EdgeKind = "report_refers_collector"
	EdgeHasCollectors     EdgeKind = "has_collectors"
	EdgeProvidesCollector EdgeKind = "provides_collector"
	EdgeHasApplications   EdgeKind = "has_applications"
	EdgeProvidesApplication EdgeKind = "provides_application"
	EdgeHasReports        EdgeKind = "has_reports"
	EdgeProvidesReport    EdgeKind = "provides_report"
	EdgeHasDashboard      EdgeKind = "has_dashboard"
	EdgeUsesDashboardProvider EdgeKind = "uses_dashboard_provider"
)

// Slot names one of the three fixed property bags every vertex carries.
type Slot string

const (
	SlotBase   Slot = "base"
	SlotModule Slot = "module"
	SlotGV     Slot = "gv"
)
