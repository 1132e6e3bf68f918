package qbf

import "testing"

func TestOptionsDefaults(t *testing.T) {
	o := NewDefaultOptions()
	if !o.Bool("bce") {
		t.Errorf("bce default = false, want true")
	}
	if o.Int("splitlim") != 32 {
		t.Errorf("splitlim default = %d, want 32", o.Int("splitlim"))
	}
}

func TestOptionsSetCaps(t *testing.T) {
	o := NewDefaultOptions()

	if err := o.Set("splitlim", 1); err == nil {
		t.Errorf("Set below minimum should return an error")
	}
	if got := o.Int("splitlim"); got != 3 {
		t.Errorf("splitlim after under-range Set = %d, want capped to 3", got)
	}

	if err := o.Set("splitlim", 1 << 30); err == nil {
		t.Errorf("Set above maximum should return an error")
	}
	if got := o.Int("splitlim"); got != 1<<20 {
		t.Errorf("splitlim after over-range Set = %d, want capped to %d", got, 1<<20)
	}
}

func TestOptionsSetUnknown(t *testing.T) {
	o := NewDefaultOptions()
	if err := o.Set("not-a-real-option", 1); err == nil {
		t.Errorf("Set of an unknown option should return an error")
	}
}

func TestParseSetting(t *testing.T) {
	o := NewDefaultOptions()

	if err := o.ParseSetting("no-bce"); err != nil {
		t.Fatalf("ParseSetting(no-bce): %s", err)
	}
	if o.Bool("bce") {
		t.Errorf("bce = true after no-bce")
	}

	if err := o.ParseSetting("splitlim=64"); err != nil {
		t.Fatalf("ParseSetting(splitlim=64): %s", err)
	}
	if got := o.Int("splitlim"); got != 64 {
		t.Errorf("splitlim = %d, want 64", got)
	}

	if err := o.ParseSetting("eq"); err != nil {
		t.Fatalf("ParseSetting(eq): %s", err)
	}
	if !o.Bool("eq") {
		t.Errorf("eq = false after bare \"eq\" setting")
	}
}

func TestParseEmbedded(t *testing.T) {
	o := NewDefaultOptions()
	errs := o.ParseEmbedded("c some comment --no-ve --splitlim=16 trailing text")
	if len(errs) != 0 {
		t.Fatalf("ParseEmbedded returned errors: %v", errs)
	}
	if o.Bool("ve") {
		t.Errorf("ve = true after --no-ve embedded option")
	}
	if got := o.Int("splitlim"); got != 16 {
		t.Errorf("splitlim = %d, want 16", got)
	}
}

func TestParseEmbeddedIgnore(t *testing.T) {
	o := NewDefaultOptions()
	o.Set("ignore", 1)
	errs := o.ParseEmbedded("c --no-ve")
	if len(errs) != 0 {
		t.Fatalf("ParseEmbedded with ignore set returned errors: %v", errs)
	}
	if !o.Bool("ve") {
		t.Errorf("ve = false even though embedded options should be ignored")
	}
}
