package sys

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForkWaitpid(t *testing.T) {
	L := newState(t)
	require.NoError(t, L.DoString(`
		local pid = sys.fork()
		if pid == 0 then
			sys._exit(5)
		end
		assert(pid > 0)
		local wpid, status = sys.waitpid(pid, 0)
		assert(wpid == pid)
		assert(sys.wifexited(status))
		assert(not sys.wifsignaled(status))
		assert(sys.wexitstatus(status) == 5)
	`))
}
