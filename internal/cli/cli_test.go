package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"
)

var _ = Describe("xlist command", func() {
	var (
		cfg    Config
		stdin  *strings.Reader
		stdout *bytes.Buffer
		stderr *bytes.Buffer
	)

	run := func(args ...string) error {
		root := NewRootCommand(cfg, stdin, stdout, stderr)
		root.SetArgs(args)
		return root.Execute()
	}

	BeforeEach(func() {
		cfg = DefaultConfig()
		stdin = strings.NewReader("")
		stdout = &bytes.Buffer{}
		stderr = &bytes.Buffer{}
	})

	Context("tokens", func() {
		It("should split on whitespace runs", func() {
			Expect(run("tokens", "the  fox", "jumps")).To(Succeed())
			Expect(stdout.String()).To(Equal("[the, fox, jumps]\n"))
		})

		It("should read stdin when no text is given", func() {
			stdin = strings.NewReader("a b\n")
			Expect(run("tokens", "-o", "lines")).To(Succeed())
			Expect(stdout.String()).To(Equal("a\nb\n"))
		})

		It("should honour a custom pattern", func() {
			Expect(run("tokens", "--pattern", ",", "a,b,c")).To(Succeed())
			Expect(stdout.String()).To(Equal("[a, b, c]\n"))
		})

		It("should reject an invalid pattern", func() {
			Expect(run("tokens", "--pattern", "(", "abc")).NotTo(Succeed())
			Expect(stderr.String()).To(ContainSubstring("token pattern"))
		})
	})

	Context("output formats", func() {
		It("should encode json", func() {
			Expect(run("unique", "-o", "json", "b a b")).To(Succeed())

			var got []string
			Expect(json.Unmarshal(stdout.Bytes(), &got)).To(Succeed())
			Expect(got).To(Equal([]string{"b", "a"}))
		})

		It("should encode yaml", func() {
			Expect(run("chars", "-o", "yaml", "ab")).To(Succeed())

			var got []string
			Expect(yaml.Unmarshal(stdout.Bytes(), &got)).To(Succeed())
			Expect(got).To(Equal([]string{"a", "b"}))
		})

		It("should fail on an unknown format", func() {
			Expect(run("chars", "-o", "xml", "ab")).To(MatchError(ContainSubstring("unknown output format")))
		})
	})

	Context("set operations", func() {
		It("should diff token lists", func() {
			Expect(run("diff", "1 2 2 3", "2")).To(Succeed())
			Expect(stdout.String()).To(Equal("[1, 3]\n"))
		})

		It("should union token lists", func() {
			Expect(run("union", "a b", "b c")).To(Succeed())
			Expect(stdout.String()).To(Equal("[a, b, b, c]\n"))
		})

		It("should require two arguments for diff", func() {
			Expect(run("diff", "a")).NotTo(Succeed())
		})
	})

	Context("combine", func() {
		It("should list combinations with the last word varying fastest", func() {
			Expect(run("combine", "ab", "cd")).To(Succeed())
			Expect(stdout.String()).To(Equal("[ac, ad, bc, bd]\n"))
		})

		It("should join each combination with the separator", func() {
			Expect(run("combine", "--sep", "-", "-o", "lines", "ab", "c")).To(Succeed())
			Expect(stdout.String()).To(Equal("a-c\nb-c\n"))
		})
	})

	Context("join", func() {
		It("should use the configured separator", func() {
			cfg.Separator = "+"
			Expect(run("join", "x y z")).To(Succeed())
			Expect(stdout.String()).To(Equal("x+y+z\n"))
		})
	})

	Context("logging", func() {
		It("should tag debug entries with the run id and command", func() {
			Expect(run("--log-level", "debug", "tokens", "a b")).To(Succeed())
			Expect(stderr.String()).To(ContainSubstring("cmd=tokens"))
			Expect(stderr.String()).To(MatchRegexp(`run=[0-9a-f-]{36}`))
		})

		It("should stay quiet at the default level", func() {
			Expect(run("tokens", "a b")).To(Succeed())
			Expect(stderr.String()).To(BeEmpty())
		})

		It("should reject an unknown level", func() {
			Expect(run("--log-level", "loud", "tokens", "a")).NotTo(Succeed())
		})
	})
})

var _ = Describe("LoadConfig", func() {
	keys := []string{EnvOutput, EnvLogLevel, EnvPattern, EnvSeparator}

	BeforeEach(func() {
		for _, k := range keys {
			Expect(os.Unsetenv(k)).To(Succeed())
		}
	})

	AfterEach(func() {
		for _, k := range keys {
			Expect(os.Unsetenv(k)).To(Succeed())
		}
	})

	It("should return defaults when nothing is set", func() {
		cfg, err := LoadConfig(filepath.Join(GinkgoT().TempDir(), "missing.env"))
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(DefaultConfig()))
	})

	It("should read values from an env file", func() {
		path := filepath.Join(GinkgoT().TempDir(), ".env")
		Expect(os.WriteFile(path, []byte("XLIST_OUTPUT=json\nXLIST_SEPARATOR=/\n"), 0o600)).To(Succeed())

		cfg, err := LoadConfig(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Output).To(Equal(FormatJSON))
		Expect(cfg.Separator).To(Equal("/"))
		Expect(cfg.LogLevel).To(Equal("warn"))
	})

	It("should prefer the environment over the file", func() {
		path := filepath.Join(GinkgoT().TempDir(), ".env")
		Expect(os.WriteFile(path, []byte("XLIST_LOG_LEVEL=info\n"), 0o600)).To(Succeed())
		Expect(os.Setenv(EnvLogLevel, "debug")).To(Succeed())

		cfg, err := LoadConfig(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.LogLevel).To(Equal("debug"))
	})
})
