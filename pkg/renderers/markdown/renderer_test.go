package markdown_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/forgekit/go-soldoc/pkg/model"
	"github.com/forgekit/go-soldoc/pkg/render"
	"github.com/forgekit/go-soldoc/pkg/renderers/markdown"
	"github.com/forgekit/go-soldoc/pkg/testsupport"
)

func loadTokenDoc(t *testing.T) model.FileDoc {
	t.Helper()
	doc := testsupport.MustLoadFileDoc(t, "testdata/token.json")
	model.Normalize(&doc)
	return doc
}

func renderToken(t *testing.T, options render.RenderOptions) string {
	t.Helper()
	renderer, err := markdown.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(testsupport.Context(), loadTokenDoc(t), options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRenderer_Identity(t *testing.T) {
	renderer, err := markdown.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != markdown.Name {
		t.Fatalf("unexpected name: %s", renderer.Name())
	}
	if !strings.HasPrefix(renderer.ContentType(), "text/markdown") {
		t.Fatalf("unexpected content type: %s", renderer.ContentType())
	}
}

func TestRenderer_ContractStructure(t *testing.T) {
	out := renderToken(t, render.RenderOptions{})

	for _, want := range []string{
		"# Token.sol",
		"A sample ERC20 style token",
		"**Author: forgekit**",
		"Reference implementation used across the documentation pipeline.",
		"*Deploy at your own risk.*",
		"## Methods",
		"### transfer",
		"### balanceOf",
		"```solidity",
		"function transfer(address to, uint256 amount) external nonpayable",
		"function balanceOf(address owner) external view returns (uint256)",
		"*Moves tokens to another account.*",
		"Reads straight from storage.",
		"#### Parameters",
		"| Name | Type | Description |",
		"| to | address | recipient |",
		"| amount | uint256 | tokens to move |",
		"#### Return Values",
		"| - | uint256 | current balance |",
		"### Events",
		"#### Transfer",
		"##### Parameters",
		"| Name | Type | Indexed | Description |",
		"| from | address | true | sender |",
		"| value | uint256 | - | tokens moved |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestRenderer_ParameterRowsKeepOrder(t *testing.T) {
	out := renderToken(t, render.RenderOptions{})

	to := strings.Index(out, "| to | address |")
	amount := strings.Index(out, "| amount | uint256 |")
	if to < 0 || amount < 0 {
		t.Fatalf("missing parameter rows:\n%s", out)
	}
	if to > amount {
		t.Fatalf("parameter rows out of order:\n%s", out)
	}
}

func TestRenderer_SectionOrdering(t *testing.T) {
	out := renderToken(t, render.RenderOptions{})

	methods := strings.Index(out, "## Methods")
	transfer := strings.Index(out, "### transfer")
	balanceOf := strings.Index(out, "### balanceOf")
	events := strings.Index(out, "### Events")
	if methods < 0 || transfer < 0 || balanceOf < 0 || events < 0 {
		t.Fatalf("missing sections:\n%s", out)
	}
	if !(methods < transfer && transfer < balanceOf && balanceOf < events) {
		t.Fatalf("sections out of order:\n%s", out)
	}
}

func TestRenderer_SuppressesEmptySections(t *testing.T) {
	out := renderToken(t, render.RenderOptions{})

	// transfer has no return values and the fixture declares no custom errors.
	if idx := strings.Index(out, "#### Return Values"); idx >= 0 {
		if idx < strings.Index(out, "### balanceOf") {
			t.Fatalf("unexpected return values before balanceOf:\n%s", out)
		}
	}
	if strings.Contains(out, "### Errors") {
		t.Fatalf("unexpected errors section:\n%s", out)
	}
}

func TestRenderer_SuppressesMissingContractMetadata(t *testing.T) {
	doc := model.FileDoc{
		Name:      "Minimal",
		Contracts: []model.ContractDoc{{Name: "Minimal"}},
	}
	renderer, err := markdown.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(testsupport.Context(), doc, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	text := string(out)
	if !strings.Contains(text, "# Minimal.sol") {
		t.Fatalf("missing heading:\n%s", text)
	}
	for _, forbidden := range []string{"**Author:", "## Methods", "### Events", "### Errors"} {
		if strings.Contains(text, forbidden) {
			t.Errorf("unexpected section %q:\n%s", forbidden, text)
		}
	}
}

func TestRenderer_PreservesContractOrder(t *testing.T) {
	doc := model.FileDoc{
		Name: "Pair",
		Contracts: []model.ContractDoc{
			{Name: "Zebra"},
			{Name: "Apple"},
		},
	}
	renderer, err := markdown.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(testsupport.Context(), doc, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	text := string(out)
	zebra := strings.Index(text, "# Zebra.sol")
	apple := strings.Index(text, "# Apple.sol")
	if zebra < 0 || apple < 0 || zebra > apple {
		t.Fatalf("contract order not preserved:\n%s", text)
	}
}

func TestRenderer_PassesTextThroughVerbatim(t *testing.T) {
	doc := model.FileDoc{
		Name: "Registry",
		Contracts: []model.ContractDoc{
			{
				Name:    "Registry",
				Details: "Uses <address> keys & raw values.",
				Notice:  "Don't deploy if balance < 0",
				Methods: []model.MethodGroup{
					{
						Name: "balances",
						Methods: []model.MethodDoc{
							{
								Name:            "balances",
								Source:          "function balances(mapping(address => uint256) storage self) external view",
								StateMutability: "view",
								Params: []model.ParamDoc{
									{Name: "self", Kind: "mapping(address => uint256)", Doc: `the "live" <storage> map`},
								},
							},
						},
					},
				},
			},
		},
	}
	model.Normalize(&doc)

	renderer, err := markdown.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(testsupport.Context(), doc, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	text := string(out)
	for _, want := range []string{
		"Uses <address> keys & raw values.",
		"*Don't deploy if balance < 0*",
		"function balances(mapping(address => uint256) storage self) external view",
		`| self | mapping(address => uint256) | the "live" <storage> map |`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	for _, forbidden := range []string{"&#39;", "&lt;", "&gt;", "&amp;", "&quot;", "&#34;"} {
		if strings.Contains(text, forbidden) {
			t.Errorf("output contains escaped entity %q:\n%s", forbidden, text)
		}
	}
}

func TestRenderer_CodeLanguageOption(t *testing.T) {
	out := renderToken(t, render.RenderOptions{CodeLanguage: "vyper"})
	if !strings.Contains(out, "```vyper") {
		t.Fatalf("expected vyper fences:\n%s", out)
	}
	if strings.Contains(out, "```solidity") {
		t.Fatalf("unexpected solidity fences:\n%s", out)
	}
}

func TestRenderer_Deterministic(t *testing.T) {
	first := renderToken(t, render.RenderOptions{})
	second := renderToken(t, render.RenderOptions{})
	if first != second {
		t.Fatal("repeated rendering produced different output")
	}
}

func TestRenderer_OutputShape(t *testing.T) {
	out := renderToken(t, render.RenderOptions{})
	if strings.Contains(out, "\n\n\n") {
		t.Fatalf("output contains blank line runs:\n%q", out)
	}
	if !strings.HasSuffix(out, "\n") || strings.HasSuffix(out, "\n\n") {
		t.Fatalf("output must end with a single newline:\n%q", out)
	}
}

type recordingTemplateRenderer struct {
	name string
	data any
}

func (r *recordingTemplateRenderer) Render(name string, data any, _ ...io.Writer) (string, error) {
	return r.RenderTemplate(name, data)
}

func (r *recordingTemplateRenderer) RenderTemplate(name string, data any, _ ...io.Writer) (string, error) {
	r.name = name
	r.data = data
	return "stubbed\n\n\n", nil
}

func (r *recordingTemplateRenderer) RenderString(content string, _ any, _ ...io.Writer) (string, error) {
	return content, nil
}

func (r *recordingTemplateRenderer) RegisterFilter(string, func(input any, param any) (any, error)) error {
	return nil
}

func (r *recordingTemplateRenderer) GlobalContext(any) error { return nil }

func TestRenderer_UsesInjectedTemplateRenderer(t *testing.T) {
	stub := &recordingTemplateRenderer{}
	renderer, err := markdown.New(markdown.WithTemplateRenderer(stub))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(testsupport.Context(), model.FileDoc{Name: "X"}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if stub.name != "templates/doc.tmpl" {
		t.Fatalf("unexpected template name: %s", stub.name)
	}
	data, ok := stub.data.(map[string]any)
	if !ok {
		t.Fatalf("unexpected context type: %T", stub.data)
	}
	if data["language"] != render.DefaultCodeLanguage {
		t.Fatalf("unexpected language: %v", data["language"])
	}
	if !bytes.Equal(out, []byte("stubbed\n")) {
		t.Fatalf("tidy not applied to output: %q", out)
	}
}
