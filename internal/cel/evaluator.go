// Package cel evaluates CEL expressions over date fields with the Vietnamese
// locale functions in scope.
package cel

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-logr/logr"
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/decls"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	celext "github.com/google/cel-go/ext"

	"github.com/oakwood-commons/vilocale/pkg/locale/vi"
	"github.com/oakwood-commons/vilocale/pkg/localize"
)

// Evaluator compiles and evaluates CEL expressions. The input document is
// bound to the variable "_".
type Evaluator struct {
	env    *cel.Env
	lgr    logr.Logger
	locale localize.Localize
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger used for compile/eval debug output.
func WithLogger(lgr logr.Logger) Option {
	return func(e *Evaluator) {
		e.lgr = lgr
	}
}

// WithLocale sets the locale whose accessors back the CEL functions. The
// default is the Vietnamese locale.
func WithLocale(l localize.Localize) Option {
	return func(e *Evaluator) {
		e.locale = l
	}
}

// NewEvaluator creates an evaluator with the CEL string/list/math extensions
// and the locale library.
func NewEvaluator(opts ...Option) (*Evaluator, error) {
	e := &Evaluator{lgr: logr.Discard(), locale: vi.Localize}
	for _, opt := range opts {
		opt(e)
	}
	env, err := newStandardCELEnv(Library(e.locale))
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	e.env = env
	return e, nil
}

// GetEnvironment returns the CEL environment for introspection.
func (e *Evaluator) GetEnvironment() *cel.Env {
	return e.env
}

func newStandardCELEnv(opts ...cel.EnvOption) (*cel.Env, error) {
	allOpts := make([]cel.EnvOption, 0, 4+len(opts))
	allOpts = append(allOpts,
		cel.Variable("_", cel.DynType),
		celext.Strings(),
		celext.Lists(),
		celext.Math(),
	)
	allOpts = append(allOpts, opts...)
	return cel.NewEnv(allOpts...)
}

// Evaluate compiles expr and evaluates it with data bound to "_".
func (e *Evaluator) Evaluate(expr string, data any) (any, error) {
	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compilation error: %w", issues.Err())
	}
	e.lgr.V(1).Info("compiled expression", "expression", expr, "output_type", typeLabel(ast.OutputType()))

	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}

	result, _, err := prg.Eval(map[string]any{
		"_": data,
	})
	if err != nil {
		return nil, fmt.Errorf("eval error: %w", err)
	}
	return ToGo(result), nil
}

// ToGo converts a CEL value to plain Go values: scalars, []any and
// map[string]any, recursively.
func ToGo(val ref.Val) any {
	if val == nil {
		return nil
	}
	switch v := val.(type) {
	case types.Bool:
		return bool(v)
	case types.Int:
		return int64(v)
	case types.Uint:
		return uint64(v)
	case types.Double:
		return float64(v)
	case types.String:
		return string(v)
	case types.Bytes:
		return []byte(v)
	case types.Null:
		return nil
	}

	inner := val.Value()
	switch v := inner.(type) {
	case []ref.Val:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = ToGo(elem)
		}
		return out
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = fromNative(elem)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, elem := range v {
			out[k] = fromNative(elem)
		}
		return out
	case map[ref.Val]ref.Val:
		out := make(map[string]any, len(v))
		for k, elem := range v {
			out[fmt.Sprint(ToGo(k))] = ToGo(elem)
		}
		return out
	}
	return inner
}

func fromNative(v any) any {
	if rv, ok := v.(ref.Val); ok {
		return ToGo(rv)
	}
	return v
}

// DiscoverFunctions lists the Vietnamese library functions as
// "name() - usage" entries, one per overload, sorted.
func DiscoverFunctions() ([]string, error) {
	env, err := newStandardCELEnv(Vietnamese())
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	wanted := make(map[string]bool, len(FunctionNames))
	for _, n := range FunctionNames {
		wanted[n] = true
	}
	return DiscoverFunctionsFromEnv(env, func(name string) bool { return wanted[name] }), nil
}

// DiscoverFunctionsFromEnv returns usage entries for every function in env
// accepted by keep (all non-operator functions when keep is nil).
func DiscoverFunctionsFromEnv(env *cel.Env, keep func(name string) bool) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, 32)
	for _, fn := range env.Functions() {
		if isOperator(fn.Name()) || (keep != nil && !keep(fn.Name())) {
			continue
		}
		for _, o := range fn.OverloadDecls() {
			entry := fn.Name() + "() - " + usageFromOverload(fn.Name(), o)
			if seen[entry] {
				continue
			}
			seen[entry] = true
			out = append(out, entry)
		}
	}
	sort.Strings(out)
	return out
}

// isOperator filters internal operator-style declarations.
func isOperator(name string) bool {
	if strings.HasPrefix(name, "@") {
		return true
	}
	return strings.HasPrefix(name, "_") || strings.HasPrefix(name, "!") || strings.HasPrefix(name, "-")
}

func typeLabel(t *types.Type) string {
	if t == nil {
		return "any"
	}
	if name := t.DeclaredTypeName(); name != "" {
		return name
	}
	if name := t.TypeName(); name != "" {
		return name
	}
	return "any"
}

func formatParams(params []*types.Type) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = typeLabel(p)
	}
	return strings.Join(parts, ", ")
}

// usageFromOverload builds a human-readable signature from an overload.
func usageFromOverload(name string, o *decls.OverloadDecl) string {
	params := o.ArgTypes()
	call := name + "(" + formatParams(params) + ")"
	if o.IsMemberFunction() && len(params) > 0 {
		call = typeLabel(params[0]) + "." + name + "(" + formatParams(params[1:]) + ")"
	}
	if res := o.ResultType(); res != nil {
		call += " -> " + typeLabel(res)
	}
	return call
}
