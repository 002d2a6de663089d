package platform

import (
	"context"
	"runtime"

	appruntime "github.com/initvue/init-vue/internal/runtime"
)

// goos is replaced in tests.
var goos = runtime.GOOS

// UTF8CodePage is the Windows code page for UTF-8.
const UTF8CodePage = "65001"

// EnsureUTF8Console switches the Windows console to UTF-8 with chcp. It
// reports whether a command was run.
func EnsureUTF8Console(ctx context.Context, r appruntime.Runner, dir string) (bool, error) {
	if goos != "windows" {
		return false, nil
	}
	return true, r.Run(ctx, dir, "chcp", UTF8CodePage)
}
