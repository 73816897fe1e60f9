package site

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Variables are the build facts interpolated into the home page.
type Variables struct {
	Organization                 string `json:"organization"`
	CoreModuleName               string `json:"coreModuleName"`
	LatestVersion                string `json:"latestVersion"`
	ScalaPublishVersions         string `json:"scalaPublishVersions"`
	ScalaJSMajorMinorVersion     string `json:"scalaJsMajorMinorVersion"`
	ScalaNativeMajorMinorVersion string `json:"scalaNativeMajorMinorVersion"`
}

func LoadVariables(path string) (Variables, error) {
	var vars Variables
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return vars, errors.Wrap(err, "could not open variables")
	}
	if err := json.Unmarshal(fileBytes, &vars); err != nil {
		return vars, errors.Wrap(err, "could not parse variables")
	}
	if vars.LatestVersion == "" {
		return vars, errors.Wrap(ErrInvalidConfig, "latestVersion is required")
	}
	return vars, nil
}

// VersionBadge escapes a version for a shields.io badge path. Only the first
// dash and the first underscore are doubled.
func VersionBadge(version string) string {
	version = strings.Replace(version, "-", "--", 1)
	return strings.Replace(version, "_", "__", 1)
}

// IndexMarkdown is the body of the home page.
func (c Config) IndexMarkdown(v Variables) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[![Typelevel](https://img.shields.io/badge/typelevel-library-fd3d50.svg)](https://typelevel.org/projects/#%s) ", c.ProjectName)
	fmt.Fprintf(&b, "[![GitHub Actions](https://img.shields.io/github/actions/workflow/status/%s/%s/ci.yml?branch=master)](%s/actions) ", c.OrganizationName, c.ProjectName, c.RepoURL)
	if c.DiscordServerID != "" {
		fmt.Fprintf(&b, "[![Discord](https://img.shields.io/discord/%s?color=5865f2)](%s) ", c.DiscordServerID, c.DiscordInvite)
	}
	fmt.Fprintf(&b, "[![Version](https://img.shields.io/badge/version-v%s-orange.svg)](https://index.scala-lang.org/%s/%s)\n\n", VersionBadge(v.LatestVersion), c.OrganizationName, c.ProjectName)

	b.WriteString("Functional, lightweight, and composable configuration loading for Scala.<br>\n")
	b.WriteString("Project is under active development. Feedback and contributions welcome.\n\n")

	b.WriteString("### Getting Started\n")
	b.WriteString("To get started with [sbt](https://scala-sbt.org), add the following line to your `build.sbt` file.\n\n")
	fmt.Fprintf(&b, "```scala\nlibraryDependencies += \"%s\" %%%% \"%s\" %% \"%s\"\n```\n\n", v.Organization, v.CoreModuleName, v.LatestVersion)

	fmt.Fprintf(&b, "Published for Scala %s, [Scala.js](https://www.scala-js.org) %s and [Scala Native](https://scala-native.org) %s.\n\n",
		v.ScalaPublishVersions, v.ScalaJSMajorMinorVersion, v.ScalaNativeMajorMinorVersion)

	fmt.Fprintf(&b, "For changes between versions, please refer to the [release notes](%s/releases).", c.RepoURL)
	return b.String()
}
