package preflight

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"cutsort/internal/config"
	"cutsort/internal/fileutil"
	"cutsort/internal/journal"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckProductTable verifies the configured category table loads.
func CheckProductTable(cfg *config.Config) Result {
	const name = "Product table"
	model, err := cfg.ProductModel()
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d folders)", model.Name(), model.Len())}
}

// CheckRootFolders reports input folders missing from the category table.
// The result is advisory.
func CheckRootFolders(cfg *config.Config) Result {
	const name = "Input folders"
	model, err := cfg.ProductModel()
	if err != nil {
		return Result{Name: name, Advisory: true, Detail: err.Error()}
	}
	folders, err := fileutil.SubDirs(cfg.RootDir())
	if err != nil {
		return Result{Name: name, Advisory: true, Detail: fmt.Sprintf("%s (error: %v)", cfg.RootDir(), err)}
	}
	var unknown []string
	for _, folder := range folders {
		if _, err := model.Lookup(folder); err != nil {
			unknown = append(unknown, folder)
		}
	}
	if len(unknown) > 0 {
		return Result{Name: name, Advisory: true, Detail: fmt.Sprintf("not in %s: %s", model.Name(), strings.Join(unknown, ", "))}
	}
	return Result{Name: name, Passed: true, Advisory: true, Detail: fmt.Sprintf("%d folders known", len(folders))}
}

// CheckJournal verifies the journal database opens with the expected schema.
func CheckJournal(ctx context.Context, cfg *config.Config) Result {
	const name = "Journal"
	if err := ctx.Err(); err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	store, err := journal.Open(cfg)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	defer store.Close()
	return Result{Name: name, Passed: true, Detail: store.Path()}
}
