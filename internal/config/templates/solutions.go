package templates

import (
	"strings"

	"github.com/alan/release-notes/cmd"
)

func securityLabels() []string {
	return []string{
		"Team:SIEM",
		"Team:SecuritySolution",
		"Team: SecuritySolution",
		"Team:Threat Hunting",
		"Team:Detections and Resp",
		"Team:Asset Management",
		"Team:Onboarding and Lifecycle Mgt",
		"Feature:Timeline",
		"Feature:Detection Rules",
		"Feature:Detection Alerts",
		"Team: CTI",
		"Team:CTI",
	}
}

func observabilityLabels() []string {
	return []string{
		"Team:obs-ux-infra_services",
		"Team:obs-ux-logs",
		"Team:obs-ux-management",
		"Team:obs-knowledge",
		"Team:Obs AI Assistant",
		"Team:apm",
		"Team:uptime",
		"Team:logs-metrics-ui",
	}
}

func endpointLabels() []string {
	return []string{
		"feature:hostisolation",
		"feature:memoryscan",
		"feature:harden",
		"feature:memoryprotection",
		"feature:comms",
		"feature:performance",
		"feature:malware",
		"feature:events",
		"feature:install",
		"feature:policy",
		"feature:ransomware",
		"feature:security",
		"feature:testing",
		"feature:rules",
		"feature:ASR",
		"feature:shipper",
		"feature:code_quality",
		"feature:false-positives",
		"feature:filescore",
		"feature:telemetry",
		"feature:agentintegration",
		"feature:user_experience",
	}
}

func serverlessLabels() []string {
	return []string{
		"Team:SecuritySolution",
		"Team: SecuritySolution",
		"serverless-bugfix",
		"serverless-enhancement",
	}
}

const securityPage = `[discrete]
[[release-notes-{{version}}]]
== {{version}}
{{#prs.breaking}}

[discrete]
[[breaking-changes-{{version}}]]
==== Breaking changes
{{{prs.breaking}}}
{{/prs.breaking}}
{{#prs.deprecations}}

[discrete]
[[deprecations-{{version}}]]
==== Deprecations
{{{prs.deprecations}}}
{{/prs.deprecations}}
{{#prs.features}}

[discrete]
[[features-{{version}}]]
==== Features
{{{prs.features}}}
{{/prs.features}}
{{#prs.enhancementsAndFixes}}

[discrete]
[[bug-fixes-{{version}}]]
==== Bug fixes and enhancements
{{{prs.enhancementsAndFixes}}}
{{/prs.enhancementsAndFixes}}
`

// solutionPage is the page layout shared by the solution templates. @HEADING@ is
// the release heading and @FIXES@ the title of the fixes section.
const solutionPage = `[discrete]
[[release-notes-{{version}}]]
=== @HEADING@
{{#prs.breaking}}

[discrete]
[[breaking-changes-{{version}}]]
==== Breaking changes
{{{prs.breaking}}}
{{/prs.breaking}}
{{#prs.deprecations}}

[discrete]
[[deprecations-{{version}}]]
==== Deprecations
{{{prs.deprecations}}}
{{/prs.deprecations}}
{{#prs.features}}

[discrete]
[[features-{{version}}]]
==== New features
{{{prs.features}}}
{{/prs.features}}
{{#prs.enhancements}}

[discrete]
[[enhancements-{{version}}]]
==== Enhancements
{{{prs.enhancements}}}
{{/prs.enhancements}}
{{#prs.fixes}}

[discrete]
[[bug-fixes-{{version}}]]
==== @FIXES@
{{{prs.fixes}}}
{{/prs.fixes}}

`

func solutionTemplate(heading, fixesTitle, pullAttribute string) *cmd.OutputTemplate {
	page := strings.NewReplacer("@HEADING@", heading, "@FIXES@", fixesTitle).Replace(solutionPage)
	return &cmd.OutputTemplate{
		Pages:   cmd.PageTemplates{ReleaseNotes: page},
		PRs:     solutionPRs(pullAttribute),
		PRGroup: "{{{prs}}}",
	}
}

func solutionPRs(pullAttribute string) cmd.PRTemplates {
	entry := "*{{{title}}}*\n\n!!TODO!!\n\nSee ({" + pullAttribute + "}{{number}}[#{{number}}]) for details.\n"
	return cmd.PRTemplates{
		Breaking:    entry,
		Deprecation: entry,
		Other:       asciidocOtherPR,
	}
}

func security() *cmd.Config {
	prs := solutionPRs("pull")
	prs.Other = "* {{{title}}} {kibana-pull}{{number}}[#{{number}}]" +
		"{{#details}}\n////\n!!TODO!! The above PR had a lengthy release note description:\n{{{details}}}\n////{{/details}}"

	return &cmd.Config{
		RepoName: "kibana",
		ExcludedLabels: []string{
			"release_note:skip",
			"Team:KibanaApp",
			"Team:AppServices",
			"Team:Fleet",
			"Team:apm",
			"Team:logs-metrics-ui",
			"Team:Geo",
			"Team:uptime",
			"Team:Elasticsearch UI",
			"Team:Presentation",
			":ml",
			"Team:Docs",
			"Team:Alerting Services",
			"Team:Core",
			"Team:Security",
			"Team:Operations",
			"Team:Monitoring",
		},
		Areas: []cmd.AreaDefinition{
			{Title: "Elastic Security", Labels: securityLabels()},
		},
		Templates: cmd.Templates{
			Asciidoc: &cmd.OutputTemplate{
				Pages:   cmd.PageTemplates{ReleaseNotes: securityPage},
				PRs:     prs,
				PRGroup: "{{{prs}}}",
			},
		},
	}
}

func observability() *cmd.Config {
	return &cmd.Config{
		RepoName:       "kibana",
		IncludedLabels: observabilityLabels(),
		ExcludedLabels: []string{"backport", "release_note:skip"},
		Areas: []cmd.AreaDefinition{
			{Title: "Elastic Observability", Labels: observabilityLabels()},
		},
		Templates: cmd.Templates{
			Asciidoc: solutionTemplate("{{version}}", "Fixes", "kibana-pull"),
			Markdown: markdownTemplate(markdownOptions{Name: "elastic-observability"}),
		},
	}
}

func endpoint() *cmd.Config {
	return &cmd.Config{
		RepoName:       "endpoint-dev",
		IncludedLabels: endpointLabels(),
		ExcludedLabels: []string{"backport", "release_note:skip"},
		Areas: []cmd.AreaDefinition{
			{Title: "Elastic Endpoint", Labels: endpointLabels()},
		},
		Templates: cmd.Templates{
			Asciidoc: solutionTemplate("{{version}}", "Bug fixes", "kibana-pull"),
		},
	}
}

func serverless() *cmd.Config {
	return &cmd.Config{
		RepoName:       "kibana",
		IncludedLabels: serverlessLabels(),
		ExcludedLabels: []string{"backport", "release_note:skip", "reverted"},
		Areas: []cmd.AreaDefinition{
			{Title: "Elastic Security", Labels: serverlessLabels()},
		},
		Templates: cmd.Templates{
			Asciidoc: solutionTemplate("{{serverlessReleaseDate}}", "Bug fixes", "kibana-pull"),
		},
	}
}
