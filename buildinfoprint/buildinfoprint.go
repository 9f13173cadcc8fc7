// buildinfoprint is imported for the side effect of printing build
// information to os.Stderr
package buildinfoprint

import "github.com/scgenomics/vdjannotate/buildinfo"

func init() {
	buildinfo.PrintToStdErr()
}
