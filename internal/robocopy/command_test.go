package robocopy_test

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Gomega convention

	"github.com/kliatsko/librarymirror/internal/robocopy"
)

func TestInvocation_Args(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	inv := robocopy.Invocation{
		Source:     "/media/Movies",
		Dest:       "/mnt/backup/Movies",
		RetryCount: 3,
		RetryWait:  2,
	}

	args := inv.Args()

	// Positional source and destination first
	g.Expect(args[0]).To(Equal("/media/Movies"))
	g.Expect(args[1]).To(Equal("/mnt/backup/Movies"))

	g.Expect(args).To(ContainElements("/MIR", "/R:3", "/W:2", "/XJ", "/BYTES", "/NDL", "/NC", "/NP"))
	g.Expect(args).ToNot(ContainElement("/L"))
}

func TestInvocation_Args_ListOnly(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	inv := robocopy.Invocation{Source: "a", Dest: "b", ListOnly: true}

	g.Expect(inv.Args()).To(ContainElement("/L"))
}

func TestFindTool_OverrideMustExist(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := robocopy.FindTool("/does/not/exist/robocopy")

	g.Expect(err).To(HaveOccurred())
}
