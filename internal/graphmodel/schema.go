package graphmodel

// vertexTuple is the lookup key for the schema table: an ordered pair of
// vertex kinds. Grounded on the original tool's EDGE_TYPES table (a
// lazy_static HashMap<VertexTuple, &str>); here it is a plain Go map
// literal evaluated once at package init, which is the idiomatic
// replacement for a lazily-initialized global.
type vertexTuple struct {
	src, dst VertexKind
}

// edgeSchema is the total, exhaustive (src_kind, dst_kind) -> edge_kind
// table. Every edge the object layer creates is looked up here; a pair
// absent from this table is a SchemaViolation, never a caller-supplied
// edge kind.
var edgeSchema = map[vertexTuple]EdgeKind{
	{KindProject, KindEut}:            EdgeHasEut,
	{KindProject, KindCi}:             EdgeHasCi,
	{KindEut, KindFeatures}:           EdgeHasFeatures,
	{KindEut, KindRtes}:               EdgeUsesRtes,
	{KindEut, KindProviders}:          EdgeHasProviders,
	{KindEut, KindSites}:              EdgeHasSites,
	{KindEut, KindCollectors}:         EdgeHasCollectors,
	{KindEut, KindApplications}:       EdgeHasApplications,
	{KindEut, KindDashboard}:          EdgeHasDashboard,

	{KindRtes, KindRte}:       EdgeProvidesRte,
	{KindRte, KindProviders}:  EdgeNeedsProvider,
	{KindRte, KindComponents}: EdgeHasComponents,
	{KindRte, KindConnections}: EdgeHasConnections,
	{KindRte, KindFeatures}:   EdgeNeeds,
	{KindRte, KindCi}:         EdgeHasCi,

	{KindSites, KindSite}:         EdgeHasSite,
	{KindSite, KindEutProvider}:   EdgeUsesProvider,
	{KindSite, KindRte}:           EdgeSiteRefersRte,

	{KindProviders, KindEutProvider}: EdgeProvidesProvider,
	{KindProviders, KindRteProvider}: EdgeProvidesProvider,

	{KindRteProvider, KindComponents}: EdgeHasComponents,
	{KindRteProvider, KindCi}:         EdgeHasCi,
	{KindRteProvider, KindShare}:      EdgeNeedsShare,

	{KindComponents, KindComponentSrc}: EdgeHasComponentSrc,
	{KindComponents, KindComponentDst}: EdgeHasComponentDst,

	{KindConnections, KindConnection}:     EdgeHasConnection,
	{KindConnection, KindConnectionSrc}:   EdgeHasConnectionSrc,
	{KindConnectionSrc, KindConnectionDst}: EdgeHasConnectionDst,
	{KindConnectionSrc, KindTest}:          EdgeRuns,
	{KindConnectionSrc, KindComponentSrc}:  EdgeHasComponentSrc,
	{KindConnectionSrc, KindSite}:          EdgeRefersSite,
	{KindConnectionDst, KindComponentDst}:  EdgeHasComponentDst,
	{KindConnectionDst, KindSite}:          EdgeRefersSite,

	{KindTest, KindVerification}: EdgeNeeds,
	{KindTest, KindCi}:           EdgeHasCi,
	{KindTest, KindCollector}:    EdgeTestRefersCollector,

	{KindCi, KindStageDeploy}:  EdgeHasDeployStages,
	{KindCi, KindStageDestroy}: EdgeHasDestroyStages,
	{KindStageDeploy, KindStageDeploy}:   EdgeNextStage,
	{KindStageDestroy, KindStageDestroy}: EdgeNextStage,

	{KindFeatures, KindFeature}: EdgeHasFeature,
	{KindFeature, KindSite}:     EdgeFeatureRefersSite,

	{KindScripts, KindScript}: EdgeHas,

	{KindCollectors, KindCollector}:     EdgeProvidesCollector,
	{KindApplications, KindApplication}: EdgeProvidesApplication,
	{KindEut, KindReport}:               EdgeHasReports,
	{KindEut, KindCi}:                   EdgeHasCi,
	{KindFeature, KindCi}:               EdgeHasCi,
	{KindVerification, KindCi}:          EdgeHasCi,
	{KindReport, KindCollector}:         EdgeReportRefersCollector,
	{KindDashboard, KindDashboardProv}:  EdgeUsesDashboardProvider,
}

// EdgeKindFor returns the schema-resolved edge kind for an edge from a
// vertex of kind src to a vertex of kind dst. The bool is false when the
// pair is not in the schema - the caller (graph.CreateEdge) turns that into
// a SchemaViolation.
func EdgeKindFor(src, dst VertexKind) (EdgeKind, bool) {
	k, ok := edgeSchema[vertexTuple{src, dst}]
	return k, ok
}
