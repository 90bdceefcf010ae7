package registry

import (
	"github.com/opkit/fileops/internal/fileops"
	"github.com/opkit/fileops/internal/types"
)

func pathParam(desc string) types.Parameter {
	return types.Parameter{Name: "path", Type: "string", Description: desc, Required: true}
}

func destinationParam() types.Parameter {
	return types.Parameter{Name: "destination", Type: "string", Description: "Destination path", Required: true}
}

func recursiveParam(desc string) types.Parameter {
	return types.Parameter{Name: "recursive", Type: "boolean", Description: desc, Default: false}
}

// Default builds the full operation catalog.
func Default() *Registry {
	r := New()
	for _, op := range catalog() {
		// The catalog is hand-maintained; a bad entry is a programming
		// error, not a runtime condition.
		if err := r.Register(op); err != nil {
			panic(err)
		}
	}
	return r
}

func catalog() []Operation {
	return []Operation{
		{
			Name:        "list_directory",
			Description: "List contents of a directory",
			Parameters: []types.Parameter{
				pathParam("Directory path"),
				recursiveParam("List the full subtree instead of immediate children"),
				{Name: "show_hidden", Type: "boolean", Description: "Include entries whose name starts with '.'", Default: false},
			},
			Handler: fileops.ListDirectory,
		},
		{
			Name:        "create_directory",
			Description: "Create a new directory",
			Parameters: []types.Parameter{
				pathParam("Directory path"),
				recursiveParam("Create missing ancestor directories"),
			},
			Handler: fileops.CreateDirectory,
		},
		{
			Name:        "copy_file",
			Description: "Copy a file, creating destination parents as needed",
			Parameters: []types.Parameter{
				pathParam("Source file path"),
				destinationParam(),
			},
			Handler: fileops.CopyFile,
		},
		{
			Name:        "copy_directory",
			Description: "Copy a directory subtree to a new destination",
			Parameters: []types.Parameter{
				pathParam("Source directory path"),
				destinationParam(),
			},
			Handler: fileops.CopyDirectory,
		},
		{
			Name:        "move_file",
			Description: "Move a file, falling back to copy+delete across devices",
			Parameters: []types.Parameter{
				pathParam("Source file path"),
				destinationParam(),
			},
			Handler: fileops.MoveFile,
		},
		{
			Name:        "move_directory",
			Description: "Move a directory, falling back to copy+delete across devices",
			Parameters: []types.Parameter{
				pathParam("Source directory path"),
				destinationParam(),
			},
			Handler: fileops.MoveDirectory,
		},
		{
			Name:        "delete_file",
			Description: "Delete a regular file",
			Parameters: []types.Parameter{
				pathParam("File path"),
			},
			Handler: fileops.DeleteFile,
		},
		{
			Name:        "delete_directory",
			Description: "Delete a directory (must be empty unless recursive)",
			Parameters: []types.Parameter{
				pathParam("Directory path"),
				recursiveParam("Remove the entire subtree"),
			},
			Handler: fileops.DeleteDirectory,
		},
		{
			Name:        "get_file_info",
			Description: "Get detailed metadata for a file or directory",
			Parameters: []types.Parameter{
				pathParam("File or directory path"),
			},
			Handler: fileops.GetFileInfo,
		},
		{
			Name:        "change_permissions",
			Description: "Change permissions using an octal mode string",
			Parameters: []types.Parameter{
				pathParam("File or directory path"),
				{Name: "permissions", Type: "string", Description: "Octal mode, e.g. '755'", Required: true},
			},
			Handler: fileops.ChangePermissions,
		},
		{
			Name:        "find_files",
			Description: "Find entries matching a glob pattern",
			Parameters: []types.Parameter{
				pathParam("Root directory"),
				{Name: "pattern", Type: "string", Description: "Glob pattern, e.g. '*.py'", Required: true},
				recursiveParam("Match at every depth instead of immediate children"),
			},
			Handler: fileops.FindFiles,
		},
		{
			Name:        "get_file_size",
			Description: "Report a file's size in human-readable units",
			Parameters: []types.Parameter{
				pathParam("File path"),
			},
			Handler: fileops.GetFileSize,
		},
		{
			Name:        "get_directory_size",
			Description: "Report the total size of a directory subtree",
			Parameters: []types.Parameter{
				pathParam("Directory path"),
			},
			Handler: fileops.GetDirectorySize,
		},
	}
}
