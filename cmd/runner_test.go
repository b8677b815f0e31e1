package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/pickx/internal/shared"
	tu "github.com/desertthunder/pickx/internal/testing"
	"github.com/urfave/cli/v3"
)

// testConfig disables animations and file logging so programs settle without real frames.
func testConfig() *shared.Config {
	config := shared.DefaultConfig()
	config.Picker.DurationMS = 0
	config.Log.File = ""
	return config
}

// pump runs cmd and feeds every resulting message back into m until the chain ends or the program quits.
func pump(m tea.Model, cmd tea.Cmd) bool {
	for cmd != nil {
		msg := cmd()
		switch msg := msg.(type) {
		case nil:
			return false
		case tea.QuitMsg:
			return true
		case tea.BatchMsg:
			for _, c := range msg {
				if pump(m, c) {
					return true
				}
			}
			return false
		default:
			_, cmd = m.Update(msg)
		}
	}
	return false
}

// drive returns a ProgramRunner that sends keys to the model instead of reading a terminal.
func drive(keys ...string) ProgramRunner {
	return func(m tea.Model) (tea.Model, error) {
		if pump(m, m.Init()) {
			return m, nil
		}
		m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
		for _, k := range keys {
			var msg tea.KeyMsg
			switch k {
			case "enter":
				msg = tea.KeyMsg{Type: tea.KeyEnter}
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			case "down":
				msg = tea.KeyMsg{Type: tea.KeyDown}
			default:
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
			}
			_, cmd := m.Update(msg)
			if pump(m, cmd) {
				return m, nil
			}
		}
		return m, nil
	}
}

func newTestRunner(output *bytes.Buffer, run ProgramRunner) *Runner {
	return NewRunner(RunnerOpts{
		Config: testConfig(),
		Logger: shared.DiscardLogger(),
		Output: output,
		Run:    run,
	})
}

func runApp(r *Runner, args ...string) error {
	app := &cli.Command{Name: "pickx", Commands: r.register()}
	return app.Run(context.Background(), append([]string{"pickx"}, args...))
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}

			runner := NewRunner(RunnerOpts{
				Config:     config,
				ConfigPath: "/test/path/config.toml",
				Logger:     logger,
				Output:     output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.configPath != "/test/path/config.toml" {
				t.Errorf("expected configPath to be set, got %s", runner.configPath)
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: nil})
			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Logger: nil})
			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: nil})
			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil run uses a terminal program", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.run == nil {
				t.Error("expected a default program runner")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"key": "value"}, true); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			err := runner.writeJSON(make(chan int), false)
			if err == nil || !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil || !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("handles newline write failure", func(t *testing.T) {
			limitedWriter := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limitedWriter})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil || !strings.Contains(err.Error(), "failed to write newline") {
				t.Errorf("expected newline write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writePlain("hello %s", "world"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.String() != "hello world" {
			t.Errorf("expected 'hello world', got %q", output.String())
		}

		failing := NewRunner(RunnerOpts{Output: &tu.FWriter{}})
		if err := failing.writePlain("test"); err == nil {
			t.Error("expected error from failing writer")
		}
	})

	t.Run("register", func(t *testing.T) {
		commands := NewRunner(RunnerOpts{}).register()

		names := map[string]bool{}
		for i, cmd := range commands {
			if cmd == nil {
				t.Fatalf("command at index %d is nil", i)
			}
			names[cmd.Name] = true
		}
		for _, want := range []string{"pick", "form", "devices", "config"} {
			if !names[want] {
				t.Errorf("expected %s command", want)
			}
		}
	})

	t.Run("resolveDevice", func(t *testing.T) {
		runner := newTestRunner(&bytes.Buffer{}, nil)

		d, err := runner.resolveDevice("")
		if err != nil || d.Name != "terminal" {
			t.Errorf("expected the terminal default, got %v %v", d, err)
		}

		d, err = runner.resolveDevice("iPhone-X")
		if err != nil || d.Height != 812 {
			t.Errorf("expected iphone-x, got %v %v", d, err)
		}

		if _, err := runner.resolveDevice("nokia"); !errors.Is(err, shared.ErrUnknownDevice) {
			t.Errorf("expected ErrUnknownDevice, got %v", err)
		}

		runner.config.Device.Platform = "ios"
		runner.config.Device.Width = 896
		d, err = runner.resolveDevice("")
		if err != nil || d.Name != "custom" || d.Width != 896 {
			t.Errorf("expected the explicit geometry, got %v %v", d, err)
		}
	})
}

func TestPick(t *testing.T) {
	t.Run("prints the confirmed item", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := newTestRunner(output, drive("down", "down", "enter"))

		if err := runApp(runner, "pick", "--items", "red, green, blue"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.String() != "blue\n" {
			t.Errorf("expected blue, got %q", output.String())
		}
	})

	t.Run("positional items and json", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := newTestRunner(output, drive("enter"))

		if err := runApp(runner, "pick", "--format", "json", "one", "two"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if strings.TrimSpace(output.String()) != `{"label":"one","index":0}` {
			t.Errorf("unexpected output %q", output.String())
		}
	})

	t.Run("cancel returns ErrCanceled", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := newTestRunner(output, drive("down", "esc"))

		err := runApp(runner, "pick", "--items", "a,b")
		if !errors.Is(err, shared.ErrCanceled) {
			t.Errorf("expected ErrCanceled, got %v", err)
		}
		if output.Len() != 0 {
			t.Errorf("expected no output, got %q", output.String())
		}
	})

	t.Run("reselecting the committed value cannot confirm", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := newTestRunner(output, drive("down", "up", "enter", "esc"))

		err := runApp(runner, "pick", "--items", "a,b,c", "--value", "1")
		if !errors.Is(err, shared.ErrCanceled) {
			t.Errorf("expected the inert confirm to leave only cancel, got %v", err)
		}
	})

	t.Run("items from a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "items.yaml")
		tu.MustWriteFile(t, path, "title: Colors\nitems: [red, green]\nvalue: 1\n")

		output := &bytes.Buffer{}
		runner := newTestRunner(output, drive("enter"))

		if err := runApp(runner, "pick", "--file", path, "--format", "shell"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.String() != "PICKX_LABEL='red'\nPICKX_INDEX=0\n" {
			t.Errorf("unexpected output %q", output.String())
		}
	})

	t.Run("no items", func(t *testing.T) {
		runner := newTestRunner(&bytes.Buffer{}, drive())
		if err := runApp(runner, "pick"); !errors.Is(err, shared.ErrNoItems) {
			t.Errorf("expected ErrNoItems, got %v", err)
		}
	})

	t.Run("bad format", func(t *testing.T) {
		runner := newTestRunner(&bytes.Buffer{}, drive())
		if err := runApp(runner, "pick", "--format", "xml", "a"); !errors.Is(err, shared.ErrUnsupportedFormat) {
			t.Errorf("expected ErrUnsupportedFormat, got %v", err)
		}
	})

	t.Run("missing explicit config", func(t *testing.T) {
		runner := newTestRunner(&bytes.Buffer{}, drive())
		err := runApp(runner, "pick", "--config", filepath.Join(t.TempDir(), "nope.toml"), "a")
		if !errors.Is(err, shared.ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig, got %v", err)
		}
	})
}

func TestForm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.toml")
	tu.MustWriteFile(t, path, `title = "Order"

[[fields]]
name = "fruit"
items = ["Apple", "Banana"]

[[fields]]
name = "size"
items = ["S", "M", "L"]
value = 2
`)

	t.Run("submit prints every field", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := newTestRunner(output, drive("enter", "down", "enter", "s"))

		if err := runApp(runner, "form", "--file", path); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.String() != "fruit: Banana\nsize: L\n" {
			t.Errorf("unexpected output %q", output.String())
		}
	})

	t.Run("quit returns ErrCanceled", func(t *testing.T) {
		runner := newTestRunner(&bytes.Buffer{}, drive("q"))
		if err := runApp(runner, "form", "--file", path); !errors.Is(err, shared.ErrCanceled) {
			t.Errorf("expected ErrCanceled, got %v", err)
		}
	})
}

func TestDevices(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		output := &bytes.Buffer{}
		if err := runApp(newTestRunner(output, nil), "devices"); err != nil {
			t.Fatal(err)
		}
		out := output.String()
		if !strings.Contains(out, "iphone-x ") || !strings.Contains(out, "20pt") {
			t.Errorf("expected iphone-x with an inset, got %s", out)
		}
	})

	t.Run("json", func(t *testing.T) {
		output := &bytes.Buffer{}
		if err := runApp(newTestRunner(output, nil), "devices", "--json"); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(output.String(), `"name":"iphone-x","platform":"ios","width":375,"height":812,"is_pad":false,"is_tv":false,"inset":20,"rows":1`) {
			t.Errorf("unexpected JSON %s", output.String())
		}
	})
}

func TestConfig(t *testing.T) {
	t.Run("init writes the example config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		output := &bytes.Buffer{}

		if err := runApp(newTestRunner(output, nil), "config", "init", "--path", path); err != nil {
			t.Fatal(err)
		}
		tu.AssertFileExists(t, path)
		if !strings.Contains(tu.MustReadFile(t, path), "[picker]") {
			t.Error("expected the picker section")
		}

		if err := runApp(newTestRunner(output, nil), "config", "init", "--path", path); err == nil {
			t.Error("expected an error for an existing file")
		}
	})

	t.Run("show prints the loaded config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		tu.MustWriteFile(t, path, "[picker]\ntitle = \"Custom\"\n")
		output := &bytes.Buffer{}

		if err := runApp(newTestRunner(output, nil), "config", "show", "--config", path); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(output.String(), `title = "Custom"`) {
			t.Errorf("expected the custom title, got %s", output.String())
		}
		if !strings.Contains(output.String(), "duration_ms = 330") {
			t.Errorf("expected defaults for missing keys, got %s", output.String())
		}
	})
}
