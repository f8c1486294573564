// Package nvim builds a segment.Context from a live Neovim instance over
// msgpack-RPC. This is the host side of the status line: it owns reading raw
// editor state, so the segment providers stay pure.
package nvim

import (
	"os"

	gonvim "github.com/neovim/go-client/nvim"

	"github.com/grovetools/statusline/errors"
	"github.com/grovetools/statusline/segment"
)

// firstClientLua returns the identity of the first language client attached
// to the current buffer, or an empty string.
const firstClientLua = `
local clients = vim.lsp.get_clients({ bufnr = 0 })
return clients[1] and clients[1].name or ""
`

// Dial connects to the Neovim instance named by the NVIM environment
// variable, which Neovim sets in every terminal it spawns.
func Dial() (*gonvim.Nvim, error) {
	addr := os.Getenv("NVIM")
	if addr == "" {
		return nil, errors.New(errors.ErrCodeNvimConnect, "NVIM is not set; not running inside a Neovim terminal")
	}

	v, err := gonvim.Dial(addr)
	if err != nil {
		return nil, errors.NvimConnect(addr, err)
	}
	return v, nil
}

// Snapshot captures the editor state the segment providers read. Each call
// reads fresh values; nothing is cached between redraws.
func Snapshot(v *gonvim.Nvim) (segment.Context, error) {
	var ctx segment.Context

	buf, err := v.CurrentBuffer()
	if err != nil {
		return ctx, errors.Wrap(err, errors.ErrCodeNvimSnapshot, "could not read current buffer")
	}

	name, err := v.BufferName(buf)
	if err != nil {
		return ctx, errors.Wrap(err, errors.ErrCodeNvimSnapshot, "could not read buffer name")
	}

	if err := v.BufferOption(buf, "filetype", &ctx.FileType); err != nil {
		return ctx, errors.Wrap(err, errors.ErrCodeNvimSnapshot, "could not read filetype")
	}
	if err := v.BufferOption(buf, "readonly", &ctx.Readonly); err != nil {
		return ctx, errors.Wrap(err, errors.ErrCodeNvimSnapshot, "could not read readonly flag")
	}
	if err := v.BufferOption(buf, "modified", &ctx.Modified); err != nil {
		return ctx, errors.Wrap(err, errors.ErrCodeNvimSnapshot, "could not read modified flag")
	}
	if err := v.BufferOption(buf, "spelllang", &ctx.SpellLangs); err != nil {
		return ctx, errors.Wrap(err, errors.ErrCodeNvimSnapshot, "could not read spelllang")
	}

	win, err := v.CurrentWindow()
	if err != nil {
		return ctx, errors.Wrap(err, errors.ErrCodeNvimSnapshot, "could not read current window")
	}
	if err := v.WindowOption(win, "spell", &ctx.Spell); err != nil {
		return ctx, errors.Wrap(err, errors.ErrCodeNvimSnapshot, "could not read spell flag")
	}

	var cwd string
	if err := v.Call("getcwd", &cwd); err != nil {
		return ctx, errors.Wrap(err, errors.ErrCodeNvimSnapshot, "could not read working directory")
	}
	ctx.WorkDir = cwd

	if err := v.ExecLua(firstClientLua, &ctx.Client); err != nil {
		// Older hosts without vim.lsp behave like no client attached.
		ctx.Client = ""
	}

	home, _ := os.UserHomeDir()
	ctx.Path, ctx.RelPath, ctx.HomePath, ctx.Base = DerivePathForms(name, cwd, home)

	return ctx, nil
}
