package version

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	goVersion "github.com/hashicorp/go-version"
)

const (
	unknownVersion  = "<unknown>"
	cliVersionTitle = "procon"
)

// Get the value of this variables at build time.
// See magefile for more details.
var (
	gitTag    string
	gitCommit string
)

// normalize converts the git tag to a dotted numeric version when possible.
func normalize(tag string) string {
	normalizedVersion, err := goVersion.NewVersion(tag)
	if err != nil {
		return tag
	}

	var versionStrNumbers []string
	for _, num := range normalizedVersion.Segments() {
		versionStrNumbers = append(versionStrNumbers, strconv.Itoa(num))
	}
	version := strings.Join(versionStrNumbers, ".")
	if pre := normalizedVersion.Prerelease(); pre != "" {
		version += "-" + pre
	}
	return version
}

// GetVersion return string with procon version info.
func GetVersion(showShort bool, needCommit bool) string {
	version := unknownVersion
	if gitTag != "" {
		version = normalize(gitTag)
	}

	if showShort || needCommit {
		if needCommit {
			return fmt.Sprintf("%s.%s", version, gitCommit)
		}

		return version
	}

	return fmt.Sprintf(
		"%s version %s, %s/%s. commit: %s",
		cliVersionTitle, version, runtime.GOOS, runtime.GOARCH, gitCommit,
	)
}
