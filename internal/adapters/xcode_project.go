package adapters

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"framelink/internal/ports"
	"framelink/internal/types"
)

const (
	pbxprojName             = "project.pbxproj"
	isaNativeTarget         = "PBXNativeTarget"
	isaFrameworksBuildPhase = "PBXFrameworksBuildPhase"
	objectDepth             = 2
)

var (
	pbxQuotedPattern      = regexp.MustCompile(`"(?:[^"\\]|\\.)*"`)
	pbxObjectStartPattern = regexp.MustCompile(`^\s*([0-9A-Fa-f]{24})\s*(?:/\*.*?\*/\s*)?=\s*\{\s*$`)
	pbxIsaPattern         = regexp.MustCompile(`^\s*isa\s*=\s*(\w+);`)
	pbxNamePattern        = regexp.MustCompile(`^\s*name\s*=\s*"?([^";]*)"?;`)
	pbxListStartPattern   = regexp.MustCompile(`^\s*(buildPhases|files)\s*=\s*\(\s*$`)
	pbxRefPattern         = regexp.MustCompile(`^\s*([0-9A-Fa-f]{24})\b`)
	pbxFrameworkPattern   = regexp.MustCompile(`/\*\s*(.+?)\s+in\s+Frameworks\s*\*/`)
)

type pbxObject struct {
	isa         string
	name        string
	buildPhases []string
	files       []string
}

// XcodeProjectAdapter reads the frameworks a target links from the
// Frameworks build phase of a project.pbxproj. It is a line scanner over
// the plist text, not a general plist parser.
type XcodeProjectAdapter struct{}

func NewXcodeProjectAdapter() XcodeProjectAdapter {
	return XcodeProjectAdapter{}
}

func (a XcodeProjectAdapter) LinkedFrameworkNames(target string, projectPath string) ([]string, error) {
	if strings.TrimSpace(target) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("target name is required")
	}
	path := projectPath
	if filepath.Base(path) != pbxprojName {
		path = filepath.Join(projectPath, pbxprojName)
	}
	objects, err := readPBXObjects(path)
	if err != nil {
		return nil, err
	}

	for _, object := range objects {
		if object.isa != isaNativeTarget || object.name != target {
			continue
		}
		var names []string
		seen := map[string]struct{}{}
		for _, phaseID := range object.buildPhases {
			phase, ok := objects[phaseID]
			if !ok || phase.isa != isaFrameworksBuildPhase {
				continue
			}
			for _, file := range phase.files {
				ext := filepath.Ext(file)
				if ext != ".framework" && ext != ".xcframework" {
					continue
				}
				name := types.FrameworkName(file)
				if _, dup := seen[name]; dup {
					continue
				}
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
		return names, nil
	}
	return nil, errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("target not found: " + target)
}

func readPBXObjects(path string) (map[string]*pbxObject, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("project file not found: " + path).
			WithCause(err)
	}
	defer file.Close()

	objects := map[string]*pbxObject{}
	var current *pbxObject
	listKey := ""
	depth := 0

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		stripped := pbxQuotedPattern.ReplaceAllString(line, `""`)

		switch {
		case current == nil && depth == objectDepth:
			if match := pbxObjectStartPattern.FindStringSubmatch(line); match != nil {
				current = &pbxObject{}
				objects[match[1]] = current
			}
		case current != nil && depth == objectDepth+1:
			if listKey != "" {
				if strings.HasPrefix(strings.TrimSpace(stripped), ")") {
					listKey = ""
				} else {
					current.addListEntry(listKey, line)
				}
			} else if match := pbxListStartPattern.FindStringSubmatch(stripped); match != nil {
				listKey = match[1]
			} else if match := pbxIsaPattern.FindStringSubmatch(stripped); match != nil {
				current.isa = match[1]
			} else if match := pbxNamePattern.FindStringSubmatch(line); match != nil {
				current.name = match[1]
			}
		}

		depth += strings.Count(stripped, "{") - strings.Count(stripped, "}")
		if current != nil && depth <= objectDepth {
			current = nil
			listKey = ""
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read project file").
			WithCause(err)
	}
	return objects, nil
}

func (o *pbxObject) addListEntry(key string, line string) {
	switch key {
	case "buildPhases":
		if match := pbxRefPattern.FindStringSubmatch(line); match != nil {
			o.buildPhases = append(o.buildPhases, match[1])
		}
	case "files":
		if match := pbxFrameworkPattern.FindStringSubmatch(line); match != nil {
			o.files = append(o.files, match[1])
		}
	}
}

var _ ports.ProjectPort = XcodeProjectAdapter{}
