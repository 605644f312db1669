package templates

import "github.com/alan/release-notes/cmd"

func kibanaAreas() []cmd.AreaDefinition {
	return []cmd.AreaDefinition{
		{Title: "Design", Labels: []string{"Team:Design", "Project:Accessibility"}},
		{Title: "Logstash", Labels: []string{"Feature:Logstash Pipelines"}},
		{Title: "Management", Labels: []string{
			"Feature:license",
			"Feature:Console",
			"Feature:Search Profiler",
			"Feature:watcher",
			"Feature:Index Patterns",
			"Feature:Kibana Management",
			"Feature:Dev Tools",
			"Feature:Inspector",
			"Feature:Index Management",
			"Feature:Snapshot and Restore",
			"Team:Elasticsearch UI",
			"Feature:FieldFormatters",
			"Feature:CCR",
			"Feature:ILM",
			"Feature:Transforms",
		}},
		{Title: "Monitoring", Labels: []string{"Team:Monitoring", "Feature:Telemetry", "Feature:Stack Monitoring"}},
		{Title: "Operations", Labels: []string{"Team:Operations", "Feature:License"}},
		{Title: "Kibana UI", Labels: []string{"Kibana UI", "Team:Core UI", "Feature:Header"}},
		{Title: "Platform", Labels: []string{
			"Team:Core",
			"Feature:Plugins",
			"Feature:New Platform",
			"Project:i18n",
			"Feature:ExpressionLanguage",
			"Feature:Saved Objects",
			"Team:Stack Services",
			"Feature:NP Migration",
			"Feature:Task Manager",
			"Team:Pulse",
		}},
		{Title: "Machine Learning", Labels: []string{
			":ml",
			"Feature:Anomaly Detection",
			"Feature:Data Frames",
			"Feature:File Data Viz",
			"Feature:ml-results",
			"Feature:Data Frame Analytics",
		}},
		{Title: "Maps", Labels: []string{"Team:Geo"}},
		{Title: "QA", Labels: []string{"Team:QA"}},
		{Title: "Security", Labels: []string{
			"Team:Security",
			"Feature:Security/Spaces",
			"Feature:users and roles",
			"Feature:Security/Authentication",
			"Feature:Security/Authorization",
			"Feature:Security/Feature Controls",
		}},
		{Title: "Canvas", Labels: []string{"Feature:Canvas"}},
		{Title: "Dashboard", Labels: []string{"Feature:Dashboard", "Feature:Drilldowns"}},
		{Title: "Discover", Labels: []string{"Feature:Discover"}},
		{Title: "Kibana Home & Add Data", Labels: []string{"Feature:Add Data", "Feature:Home"}},
		{Title: "Querying & Filtering", Labels: []string{
			"Feature:Query Bar",
			"Feature:Courier",
			"Feature:Filters",
			"Feature:Timepicker",
			"Feature:Highlight",
			"Feature:KQL",
			"Feature:Rollups",
			"Feature:Search",
			"Project:AsyncSearch",
		}},
		{Title: "Reporting", Labels: []string{"Feature:Reporting", "Team:Reporting Services"}},
		{Title: "Sharing", Labels: []string{"Feature:Embedding", "Feature:SharingURLs"}},
		{
			Title: "Lens & Visualizations",
			Labels: []string{
				"Feature:Lens",
				"Feature:Timelion",
				"Feature:TSVB",
				"Feature:Coordinate Map",
				"Feature:Region Map",
				"Feature:Vega",
				"Feature:Gauge Vis",
				"Feature:Tagcloud",
				"Feature:Vis Loader",
				"Feature:Vislib",
				"Feature:Vis Editor",
				"Feature:Aggregations",
				"Feature:Input Control",
				"Feature:Visualizations",
				"Feature:Markdown",
				"Feature:Data Table",
				"Feature:Heatmap",
				"Feature:Pie Chart",
				"Feature:XYAxis",
				"Feature:Graph",
				"Feature:New Feature",
				"Feature:MetricVis",
			},
			Options: &cmd.AreaOptions{BracketHandling: cmd.BracketHandlingVisualizations},
		},
		{
			Title:  "Elastic Security",
			Labels: securityLabels(),
			Options: &cmd.AreaOptions{
				TextOverwriteTemplate: "For the Elastic Security {{version}} release information, " +
					"refer to {security-guide}/release-notes.html[_Elastic Security Solution Release Notes_].",
			},
		},
		{Title: "Code", Labels: []string{"Team:Code"}},
		{Title: "Infrastructure", Labels: []string{"Feature:Infra UI", "Feature:Service Maps"}},
		{Title: "Logs", Labels: []string{"Feature:Logs UI"}},
		{Title: "Uptime", Labels: []string{"Feature:Uptime", "Team:uptime"}},
		{Title: "Beats Management", Labels: []string{"Feature:beats-cm", "Team:Beats"}},
		{Title: "APM", Labels: []string{"Team:apm"}},
		{Title: "Alerting", Labels: []string{"Feature:Alerting", "Team:Alerting Services", "Feature:Actions"}},
		{Title: "Metrics", Labels: []string{"Feature:Metrics UI", "Team:logs-metrics-ui"}},
		{Title: "Data ingest", Labels: []string{"Ingest", "Feature:Ingest Node Pipelines"}},
		{Title: "Fleet", Labels: []string{"Team:Fleet"}},
	}
}

const kibanaReleaseNotesPage = `[[release-notes-{{version}}]]
== {kib} {{version}}

coming::[{{version}}]

Review the following information about the {kib} {{version}} release.

{{#prs.breaking}}
[float]
[[breaking-changes-{{version}}]]
=== Breaking changes

Breaking changes can prevent your application from optimal operation and performance.
Before you upgrade to {{version}}, review the breaking changes, then mitigate the impact to your application.

{{{prs.breaking}}}
{{/prs.breaking}}
{{#prs.deprecations}}
[float]
[[deprecations-{{version}}]]
=== Deprecations

The following functionality is deprecated in {{version}}, and will be removed in {{nextMajorVersion}}.
Deprecated functionality does not have an immediate impact on your application, but we strongly recommend
you make the necessary updates after you upgrade to {{version}}.

{{{prs.deprecations}}}
{{/prs.deprecations}}
{{#prs.features}}
[float]
[[features-{{version}}]]
=== Features
{kib} {{version}} adds the following new and notable features.

{{{prs.features}}}
{{/prs.features}}

For more information about the features introduced in {{version}}, refer to <<whats-new,What's new in {{minorVersion}}>>.

[[enhancements-and-bug-fixes-v{{version}}]]
{{^isPatchRelease}}=== Enhancements and fixes{{/isPatchRelease}}{{#isPatchRelease}}=== {kib} {{version}}{{/isPatchRelease}}

For detailed information about the {{version}} release, review the enhancements and fixes.

{{#prs.breaking}}
[float]
[[breaking-v{{version}}]]
=== Breaking
{{{prs.breaking}}}

{{/prs.breaking}}
{{#prs.deprecations}}
[float]
[[deprecation-v{{version}}]]
=== Deprecations
{{{prs.deprecations}}}

{{/prs.deprecations}}
{{#prs.enhancements}}
[float]
[[enhancement-v{{version}}]]
=== Enhancements
{{{prs.enhancements}}}

{{/prs.enhancements}}
{{#prs.fixes}}
[float]
[[fixes-v{{version}}]]
=== Fixes
{{{prs.fixes}}}
{{/prs.fixes}}
`

const kibanaPatchReleaseNotesPage = `[[release-notes-{{version}}]]
== {kib} {{version}}

The {{version}} release includes the following fixes.

{{#prs.enhancements}}
[float]
[[enhancement-v{{version}}]]
=== Enhancements
{{{prs.enhancements}}}

{{/prs.enhancements}}
{{#prs.fixes}}
[float]
[[fixes-v{{version}}]]
=== Fixes
{{{prs.fixes}}}
{{/prs.fixes}}
`

const kibanaBreakingPR = `[discrete]
[[breaking-{{number}}]]
* {{{title}}}.
[%collapsible]
====
*Details* +
!!TODO!!

*Impact* +
!!TODO!!

View ({kibana-pull}{{number}}[#{{number}}])
====
`

const kibanaDeprecationPR = `[discrete]
[[deprecation-{{number}}]]
* {{{title}}}.
[%collapsible]
====
*Details* +
!!TODO!!

*Impact* +
!!TODO!!

View ({kibana-pull}{{number}}[#{{number}}])
====
`

// asciidocOtherPR is the list entry used by most AsciiDoc templates
const asciidocOtherPR = "* {{{title}}} ({kibana-pull}{{number}}[#{{number}}])." +
	"{{#details}}\n////\n!!TODO!! The above PR had a lengthy release note description:\n{{{details}}}\n////{{/details}}"

func kibana() *cmd.Config {
	return &cmd.Config{
		RepoName:       "kibana",
		ExcludedLabels: []string{"release_note:skip", "Team:Docs", "reverted", "backport"},
		Areas:          kibanaAreas(),
		Templates: cmd.Templates{
			Asciidoc: &cmd.OutputTemplate{
				Pages: cmd.PageTemplates{
					ReleaseNotes:      kibanaReleaseNotesPage,
					PatchReleaseNotes: kibanaPatchReleaseNotesPage,
				},
				PRs: cmd.PRTemplates{
					Breaking:    kibanaBreakingPR,
					Deprecation: kibanaDeprecationPR,
					Other:       asciidocOtherPR,
				},
				PRGroup: "{{{groupTitle}}}::\n{{{prs}}}",
			},
			Markdown: markdownTemplate(markdownOptions{
				Name:            "kibana",
				NavigationTitle: "Kibana",
				NameTag:         "kib",
			}),
		},
	}
}
