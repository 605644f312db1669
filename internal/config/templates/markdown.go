package templates

import (
	"strings"

	"github.com/alan/release-notes/cmd"
)

// markdownOptions parameterize the shared Markdown template set
type markdownOptions struct {
	Name            string // anchor prefix, e.g. "kibana"
	NavigationTitle string
	NameTag         string // docs attribute rendered as {{tag}}, defaults to Name
	URLPath         string // legacy guide path, defaults to Name
}

// escapedTag renders as a literal {{tag}} by switching delimiters around it
func escapedTag(tag string) string {
	return "{{=<% %>=}}{{" + tag + "}}<%={{ }}=%>"
}

const markdownPatchPage = `---
navigation_title: "@NAV@"
mapped_pages:
  - https://www.elastic.co/guide/en/@URL@/current/release-notes.html
  - https://www.elastic.co/guide/en/@URL@/current/whats-new.html
  - https://www.elastic.co/guide/en/@URL@/master/release-notes-{{version}}.html
  - https://www.elastic.co/guide/en/@URL@/master/enhancements-and-bug-fixes-v{{version}}.html
---

# @TAG@ release notes [@NAME@-release-notes]

Review the changes, fixes, and more in each version of @TAG@.

To check for security updates, go to [Security announcements for the Elastic stack](https://discuss.elastic.co/c/announcements/security-announcements/31).

% Release notes include only features, enhancements, and fixes. Add breaking changes, deprecations, and known issues to the applicable release notes sections.

% ## version.next [@NAME@-next-release-notes]

% ### Features and enhancements [@NAME@-next-features-enhancements]
% *

% ### Fixes [@NAME@-next-fixes]
% *

## {{version}} [@NAME@-{{versionWithoutPeriods}}-release-notes]

::::{NOTE}

::::


{{#prs.enhancements}}
{{#prs.features}}
### Features and enhancements [@NAME@-{{versionWithoutPeriods}}-features-enhancements]
{{{prs.features}}}
{{/prs.features}}
{{{prs.enhancements}}}
{{/prs.enhancements}}


{{#prs.fixes}}
### Fixes [@NAME@-{{versionWithoutPeriods}}-fixes]
{{{prs.fixes}}}
{{/prs.fixes}}`

const markdownBreakingAndDeprecations = `

{{#prs.breaking}}
---
navigation_title: "Breaking changes"
mapped_pages:
  - https://www.elastic.co/guide/en/@URL@/current/breaking-changes-summary.html
---
# @TAG@ breaking changes [@NAME@-breaking-changes]
Breaking changes can impact your Elastic applications, potentially disrupting normal operations. Before you upgrade, carefully review the @TAG@ breaking changes and take the necessary steps to mitigate any issues. To learn how to upgrade, check [Upgrade](/deploy-manage/upgrade.md).

% ## Next version [@NAME@-next-breaking-changes]

## {{version}} [@NAME@-{{versionWithoutPeriods}}-breaking-changes]
{{{prs.breaking}}}
{{/prs.breaking}}


{{#prs.deprecations}}
---
navigation_title: "Deprecations"
---

# @TAG@ deprecations [@NAME@-deprecations]
Over time, certain Elastic functionality becomes outdated and is replaced or removed. To help with the transition, Elastic deprecates functionality for a period before removal, giving you time to update your applications.

Review the deprecated functionality for @TAG@. While deprecations have no immediate impact, we strongly encourage you update your implementation after you upgrade. To learn how to upgrade, check out [Upgrade](docs-content://deploy-manage/upgrade.md).

% ## Next version [@NAME@-next-deprecations]

## {{version}} [@NAME@-{{versionWithoutPeriods}}-deprecations]
{{{prs.deprecations}}}
{{/prs.deprecations}}
`

const markdownBreakingPR = "\n\n::::{dropdown} {{{title}}}\n" +
	"% !!TODO!! Description of the breaking change.\n" +
	"For more information, check [#{{number}}](@PULL@{{number}}).\n" +
	"% !!TODO!! **Impact**<br> Impact of the breaking change.\n" +
	"% !!TODO!! **Action**<br> Steps for mitigating deprecation impact.\n" +
	"::::"

const markdownDeprecationPR = "\n\n::::{dropdown} {{{title}}}\n" +
	"% !!TODO!! Description of the deprecation.\n" +
	"For more information, refer to [#{{number}}](@PULL@{{number}}).\n" +
	"% !!TODO!! **Impact**<br> Impact of deprecation.\n" +
	"% !!TODO!! **Action**<br> Steps for mitigating deprecation impact.\n" +
	"::::"

const markdownOtherPR = "* {{{title}}} [#{{number}}](@PULL@{{number}})." +
	"{{#details}}\n% !!TODO!! The above PR had a lengthy release note description:\n% {{{details}}}\n{{/details}}"

const markdownPRGroup = "{{#hasPRGroups}}\n\n**{{{groupTitle}}}**:\n{{{prs}}}{{/hasPRGroups}}" +
	"{{^hasPRGroups}}{{{prs}}}{{/hasPRGroups}}"

// markdownTemplate builds the Markdown template set shared by all products
func markdownTemplate(opts markdownOptions) *cmd.OutputTemplate {
	if opts.NameTag == "" {
		opts.NameTag = opts.Name
	}
	if opts.URLPath == "" {
		opts.URLPath = opts.Name
	}
	if opts.NavigationTitle == "" {
		opts.NavigationTitle = opts.Name
	}

	replacer := strings.NewReplacer(
		"@NAV@", opts.NavigationTitle,
		"@URL@", opts.URLPath,
		"@TAG@", escapedTag(opts.NameTag),
		"@NAME@", opts.Name,
		"@PULL@", escapedTag("kib-pull"),
	)

	patchPage := replacer.Replace(markdownPatchPage)

	return &cmd.OutputTemplate{
		Pages: cmd.PageTemplates{
			ReleaseNotes:      patchPage + replacer.Replace(markdownBreakingAndDeprecations),
			PatchReleaseNotes: patchPage,
		},
		PRs: cmd.PRTemplates{
			Breaking:    replacer.Replace(markdownBreakingPR),
			Deprecation: replacer.Replace(markdownDeprecationPR),
			Other:       replacer.Replace(markdownOtherPR),
		},
		PRGroup: markdownPRGroup,
	}
}
