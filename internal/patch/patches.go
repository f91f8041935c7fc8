package patch

import (
	"regexp"
	"strings"
)

// Object identifiers in the keyboard app's project.pbxproj.
const (
	RunnerTargetID                = "97C146ED1CF9000F007C117D"
	KeyboardExtensionTargetID     = "3032BDC92E5F606D000CF4B1"
	EmbedFoundationExtensionsID   = "3032BDD72E5F606D000CF4B1"
	KeyboardExtensionAppexBuildID = "3032BDD12E5F606D000CF4B1"
)

const (
	signOnCopySettings           = "settings = {ATTRIBUTES = (RemoveHeadersOnCopy, ); CODE_SIGN_ON_COPY = YES; }; "
	deploymentPostprocessingOnly = "runOnlyForDeploymentPostprocessing = 1;"
	emptyListBody                = "\n\t\t\t"
	buildPhaseEntryIndent        = "\t\t\t\t"
)

// RunnerBuildPhaseOrder is the Runner target's build phase order that avoids the
// cycle between the Foundation extension embed and the Thin Binary script.
var RunnerBuildPhaseOrder = []string{
	"F30F350B4F3E4244B6963535 /* [CP] Check Pods Manifest.lock */",
	"9740EEB61CF901F6004384FC /* Run Script */",
	"97C146EA1CF9000F007C117D /* Sources */",
	"97C146EB1CF9000F007C117D /* Frameworks */",
	"97C146EC1CF9000F007C117D /* Resources */",
	"3B06AD1E1E4923F5004D2608 /* Thin Binary */",
	"3C8803CBD61C2F6C4AC4075F /* [CP] Embed Pods Frameworks */",
	"9705A1C41CF9048500538489 /* Embed Frameworks */",
	"3032BDA32E5F5C3D000CF4B1 /* Embed ExtensionKit Extensions */",
	"3032BDD72E5F606D000CF4B1 /* Embed Foundation Extensions */",
}

// BuildPhaseListBody renders phases the way Xcode lays out a buildPhases list body.
func BuildPhaseListBody(phases []string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, phase := range phases {
		b.WriteString(buildPhaseEntryIndent)
		b.WriteString(phase)
		b.WriteString(",\n")
	}
	b.WriteString("\t\t\t")
	return b.String()
}

var (
	// ReorderRunnerBuildPhases replaces the Runner target's buildPhases list with
	// RunnerBuildPhaseOrder.
	ReorderRunnerBuildPhases = Patch{
		Name:    "reorder Runner build phases",
		Pattern: regexp.MustCompile(`(` + RunnerTargetID + ` /\* Runner \*/ = \{[^}]*buildPhases = \()[^)]*(\);)`),
		Replace: Around(BuildPhaseListBody(RunnerBuildPhaseOrder)),
	}

	// DeferEmbedFoundationExtensions makes the Embed Foundation Extensions copy phase run
	// only for deployment postprocessing.
	DeferEmbedFoundationExtensions = Patch{
		Name: "defer Embed Foundation Extensions",
		Pattern: regexp.MustCompile(`(` + EmbedFoundationExtensionsID +
			` /\* Embed Foundation Extensions \*/ = \{[^}]*files = \([^)]*\);[^}]*)(runOnlyForDeploymentPostprocessing = 0;)`),
		Replace: After(deploymentPostprocessingOnly),
	}

	// SignKeyboardExtensionOnCopy adds CODE_SIGN_ON_COPY to the settings of the
	// KeyboardExtension.appex build file.
	SignKeyboardExtensionOnCopy = Patch{
		Name: "sign KeyboardExtension.appex on copy",
		Pattern: regexp.MustCompile(`(` + KeyboardExtensionAppexBuildID +
			` /\* KeyboardExtension\.appex in Embed Foundation Extensions \*/ = \{[^}]*)(settings = \{ATTRIBUTES = \(RemoveHeadersOnCopy, \); \}; )`),
		Replace: After(signOnCopySettings),
	}

	// ClearKeyboardExtensionDependencies empties the KeyboardExtension target's
	// dependencies list.
	ClearKeyboardExtensionDependencies = Patch{
		Name:    "clear KeyboardExtension dependencies",
		Pattern: regexp.MustCompile(`(` + KeyboardExtensionTargetID + ` /\* KeyboardExtension \*/ = \{[^}]*dependencies = \()[^)]*(\);)`),
		Replace: Around(emptyListBody),
	}
)
