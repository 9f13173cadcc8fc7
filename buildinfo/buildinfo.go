package buildinfo

import (
	"fmt"
	"os"
	"runtime/debug"
)

// Info identifies the build that produced the running binary, so output
// tables can be traced back to a specific commit.
type Info struct {
	Package      string
	GoVersion    string
	Revision     string
	RevisionTime string
	Dirty        bool
}

func (i Info) String() string {
	dirty := ""
	if i.Dirty {
		dirty = " The working tree was modified after that commit."
	}

	return fmt.Sprintf("This %s binary was built with %s from commit %s (%s).%s", i.Package, i.GoVersion, i.Revision, i.RevisionTime, dirty)
}

func Get() Info {
	out := Info{}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.Package = bi.Path
	out.GoVersion = bi.GoVersion
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			out.Revision = setting.Value
		case "vcs.time":
			out.RevisionTime = setting.Value
		case "vcs.modified":
			out.Dirty = setting.Value == "true"
		}
	}

	return out
}

func PrintToStdErr() {
	fmt.Fprintf(os.Stderr, "%s\n", Get())
}
