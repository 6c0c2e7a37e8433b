package cmd

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/eykd/skilllint-go/internal/config"
	"github.com/eykd/skilllint-go/internal/domain"
	"github.com/eykd/skilllint-go/internal/fs"
	"github.com/eykd/skilllint-go/internal/lint"
	"github.com/eykd/skilllint-go/internal/lock"
	"github.com/eykd/skilllint-go/internal/rules"
)

// configLoader returns the effective configuration for a command run.
type configLoader func() (domain.Config, error)

// loadConfigFromFlags loads the file named by --config, or the default
// config file in the working directory when it exists.
func loadConfigFromFlags() (domain.Config, error) {
	if p := GetConfigPath(); p != "" {
		return config.Load(p, false)
	}
	return config.Load(config.DefaultFilename, true)
}

// lintServicer abstracts the lint.Service method used by the check adapter.
type lintServicer interface {
	Check(ctx context.Context, targets []string) (*lint.CheckResult, error)
}

// newLintService wires a lint.Service to the filesystem adapters.
func newLintService(cfg domain.Config, opts CheckOptions) lintServicer {
	return lint.NewService(
		rules.New(cfg),
		fs.NewOSFinder(opts.Glob),
		fs.OSContentReader{},
		fs.DirNamer{},
	)
}

// --- checkAdapter ---

type checkAdapter struct {
	loadConfig configLoader
	newService func(cfg domain.Config, opts CheckOptions) lintServicer
}

func newCheckAdapter() *checkAdapter {
	return &checkAdapter{
		loadConfig: loadConfigFromFlags,
		newService: newLintService,
	}
}

func (a *checkAdapter) Check(ctx context.Context, targets []string, opts CheckOptions) (*CheckResult, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	svcResult, err := a.newService(cfg, opts).Check(ctx, targets)
	if err != nil {
		return nil, err
	}

	findings := make([]CheckFinding, len(svcResult.Diagnostics))
	for i, d := range svcResult.Diagnostics {
		findings[i] = convertDiagnostic(d)
	}
	return &CheckResult{
		Findings:  findings,
		Documents: svcResult.Documents,
		Checked:   svcResult.Checked,
	}, nil
}

// --- initAdapter ---

// fileCreator abstracts fs.OSWriter.
type fileCreator interface {
	CreateFile(ctx context.Context, path string, content []byte) error
}

// locker abstracts lock.Lock.
type locker interface {
	Do(ctx context.Context, fn func() error) error
}

type initAdapter struct {
	getwd   func() (string, error)
	writer  fileCreator
	newLock func(target string) locker
}

func newInitAdapter() *initAdapter {
	return &initAdapter{
		getwd:  os.Getwd,
		writer: fs.OSWriter{},
		newLock: func(target string) locker {
			p := lockPathFor(target)
			return &removingLock{Lock: lock.NewFromPath(p), path: p}
		},
	}
}

// lockPathFor returns a per-target lock file path in the temp directory so
// the lock never lands inside the user's tree.
func lockPathFor(target string) string {
	sum := sha256.Sum256([]byte(target))
	return filepath.Join(os.TempDir(), "skl-"+hex.EncodeToString(sum[:8])+".lock")
}

// removingLock deletes its lock file after a run that acquired it, so init
// leaves nothing behind in the temp directory.
type removingLock struct {
	*lock.Lock
	path string
}

func (l *removingLock) Do(ctx context.Context, fn func() error) error {
	acquired := false
	err := l.Lock.Do(ctx, func() error {
		acquired = true
		return fn()
	})
	if !acquired {
		return err
	}
	if rerr := os.Remove(l.path); rerr != nil && !errors.Is(rerr, os.ErrNotExist) && err == nil {
		err = fmt.Errorf("removing lock %s: %w", l.path, rerr)
	}
	return err
}

func (a *initAdapter) Init(ctx context.Context) (*InitResult, error) {
	target := GetConfigPath()
	if target == "" {
		dir, err := a.getwd()
		if err != nil {
			return nil, err
		}
		target = filepath.Join(dir, config.DefaultFilename)
	}
	if abs, err := filepath.Abs(target); err == nil {
		target = abs
	}

	data, err := config.Marshal(domain.DefaultConfig())
	if err != nil {
		return nil, err
	}

	err = a.newLock(target).Do(ctx, func() error {
		return a.writer.CreateFile(ctx, target, data)
	})
	if fs.IsExists(err) {
		return &InitResult{Path: target, Created: false}, nil
	}
	if err != nil {
		return nil, err
	}
	return &InitResult{Path: target, Created: true}, nil
}

// --- rulesAdapter ---

type rulesAdapter struct {
	loadConfig configLoader
}

func newRulesAdapter() *rulesAdapter {
	return &rulesAdapter{loadConfig: loadConfigFromFlags}
}

func (a *rulesAdapter) Rules(_ context.Context) (*RulesResult, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	v := rules.New(cfg)
	infos := make([]RuleInfo, 0, len(v.Rules()))
	for _, r := range v.Rules() {
		infos = append(infos, RuleInfo{ID: r.ID(), Summary: r.Summary()})
	}
	return &RulesResult{
		Rules: infos,
		Limits: LimitsInfo{
			HardMaxLines: cfg.Limits.HardMaxLines,
			SoftMaxLines: cfg.Limits.SoftMaxLines,
			HardMaxWords: cfg.Limits.HardMaxWords,
			SoftMaxWords: cfg.Limits.SoftMaxWords,
		},
		ReservedWords: append([]string(nil), cfg.ReservedWords...),
		Marker:        cfg.Marker,
	}, nil
}

// convertDiagnostic converts a domain.Diagnostic to a cmd.CheckFinding.
func convertDiagnostic(d domain.Diagnostic) CheckFinding {
	return CheckFinding{
		Path:     d.Path,
		Line:     d.Line,
		Severity: Severity(d.Severity),
		Rule:     d.Rule,
		Message:  d.Detail,
		Context:  d.Context,
	}
}
