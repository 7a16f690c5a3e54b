package pii

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suryansh-23/piiscan/internal/types"
)

func TestEmptyTextHasNoPII(t *testing.T) {
	c := New("")
	assert.False(t, c.HasAnyPII())
	for _, category := range types.AllCategories() {
		assert.False(t, c.Has(category), "category %s", category)
	}
	assert.Empty(t, c.Categories())
	assert.Empty(t, c.Spans())
}

func TestHasAnyPIIIsOrOfCategories(t *testing.T) {
	inputs := []string{
		"",
		"My phone number is 970-555-1212",
		"My number is 555-1212",
		"johnsmith@gmail.com",
		"192.168.168.2",
		"255.255.255.255",
		"2001:0db8:85a3:0000:0000:8a2e:0370:7334",
		":::::::",
		"John Doe",
		"1234 Nowhere Street",
		"1234-5678-1234-5678",
		"123-45-6789",
		"@johndoe",
		"johndoe@",
		"nothing to see here",
	}
	for _, input := range inputs {
		c := New(input)
		or := c.HasPhone() || c.HasEmail() || c.HasIPv4() || c.HasIPv6() || c.HasName() ||
			c.HasStreetAddress() || c.HasCreditCard() || c.HasSSN() || c.HasHandle()
		assert.Equal(t, or, c.HasAnyPII(), "input %q", input)
		assert.Equal(t, or, c.Verdict().Any(), "input %q", input)
	}
}

func TestQueriesAreIdempotent(t *testing.T) {
	c := New("Reach John Doe at 970-555-1212 or @johndoe")
	first := c.Verdict()
	for i := 0; i < 3; i++ {
		assert.True(t, c.HasHandle())
		assert.True(t, c.HasPhone())
		assert.True(t, c.HasName())
		assert.False(t, c.HasSSN())
		assert.Equal(t, first, c.Verdict())
	}
	assert.Equal(t, []types.Category{types.CategoryPhone, types.CategoryName, types.CategoryHandle}, c.Categories())
}

func TestPhone(t *testing.T) {
	assert.True(t, New("My phone number is 970-555-1212").HasPhone())
	assert.False(t, New("My number is 555-1212").HasPhone())
	assert.False(t, New("My phone number is 970.555.1212").HasPhone())
	assert.False(t, New("My phone number is 970 555 1212").HasPhone())
	assert.False(t, New("9705551212").HasPhone())
}

func TestDigitPatternsOnlyStopAtDigitRuns(t *testing.T) {
	assert.True(t, New("ph970-555-1212").HasPhone())
	assert.True(t, New("tel:970-555-1212;ext").HasPhone())
	assert.False(t, New("1970-555-1212").HasPhone())
	assert.False(t, New("970-555-12123").HasPhone())
	assert.True(t, New("id123-45-6789").HasSSN())
	assert.False(t, New("0123-45-6789").HasSSN())
	assert.False(t, New("123-45-67890").HasSSN())
	assert.True(t, New("cc1234-5678-1234-5678").HasCreditCard())

	spans := New("ph970-555-1212").Spans()
	require.Len(t, spans, 1)
	assert.Equal(t, Span{Start: 2, End: 14, Category: types.CategoryPhone}, spans[0])
}

func TestEmail(t *testing.T) {
	assert.True(t, New("johnsmith@gmail.com").HasEmail())
	assert.True(t, New("write to john.smith@mail.example.co.uk today").HasEmail())
	assert.False(t, New("john@gmail").HasEmail())
	assert.False(t, New("john@gmail.").HasEmail())
	assert.False(t, New("@gmail.com").HasEmail())
}

func TestIPv4(t *testing.T) {
	valid := []string{"192.168.168.2", "10.0.0.1", "8.8.8.8", "172.16.0.255"}
	for _, input := range valid {
		assert.True(t, New(input).HasIPv4(), "input %q", input)
	}
	invalid := []string{
		"255.255.255.255",
		"0.0.0.0",
		"192.168.168.256",
		"192.168.168.1.2.5",
		"192.168",
		"1.2.3",
		".1.2.3.4",
		"1.2.3.4.",
		"1..2.3",
		"1.2.3.a",
		"1.2.3.4 ",
		"host 1.2.3.4",
		"1234.1.1.1",
	}
	for _, input := range invalid {
		assert.False(t, New(input).HasIPv4(), "input %q", input)
	}
}

func TestIPv6(t *testing.T) {
	valid := []string{
		"2001:0db8:85a3:0000:0000:8a2e:0370:7334",
		":0db8:85a3:0000:0000:8a2e:0370:7334",
		":0db8::0000::8a2e:0370:7334",
		"2001:DB8:0:0:8:800:200C:417A",
		"::1",
		"fe80::",
	}
	for _, input := range valid {
		assert.True(t, New(input).HasIPv6(), "input %q", input)
	}
	invalid := []string{
		":::::::",
		"::",
		"0:0:0:0:0:0:0:0",
		"0000:0000:0000:0000:0000:0000:0000:0000",
		"::0",
		"0::0",
		"0::",
		"::0000:0",
		"G001:0db8:85a3:0000:0000:8a2e:0370:7334",
		"$001:0db8:85a3:0000:0000:8a2e:0370:7334",
		"2001.0db8.85a3.0000.0000.8a2e.0370.7334",
		"2001:0db8:85a3:0000:0000:8a2e:0370:7334:1234",
		"2001:0db8:85a3",
		"1::2:3:4:5:6:7:8",
		"20011:0db8:85a3:0000:0000:8a2e:0370:7334",
		"1",
	}
	for _, input := range invalid {
		assert.False(t, New(input).HasIPv6(), "input %q", input)
	}
}

func TestCreditCard(t *testing.T) {
	assert.True(t, New("1234-5678-1234-5678").HasCreditCard())
	assert.True(t, New("card: 1234-5678-1234-5678 exp 09/29").HasCreditCard())
	invalid := []string{
		"A234-5678-1234-5678",
		"1234-5B78-1234-5678",
		"1234-5678-1234-567C",
		"1234.5678.1234.5678",
		"1234 5678 1234 5678",
		"1234_5678_1234_5678",
		"123-5678-1234-5678",
		"12345-5678-1234-5678",
		"1234-5678-1234-56789",
		"1234567812345678",
	}
	for _, input := range invalid {
		assert.False(t, New(input).HasCreditCard(), "input %q", input)
	}
}

func TestCreditCardIsNotPhoneOrSSN(t *testing.T) {
	c := New("1234-5678-1234-5678")
	assert.False(t, c.HasPhone())
	assert.False(t, c.HasSSN())
}

func TestSSN(t *testing.T) {
	assert.True(t, New("123-45-6789").HasSSN())
	assert.True(t, New("987-65-4321").HasSSN())
	invalid := []string{"123.45.6789", "123,45,6789", "123456789", "123-456-789"}
	for _, input := range invalid {
		assert.False(t, New(input).HasSSN(), "input %q", input)
	}
}

func TestHandle(t *testing.T) {
	assert.True(t, New("@johndoe").HasHandle())
	assert.True(t, New("thanks @jane_doe!").HasHandle())
	assert.False(t, New("johndoe@").HasHandle())
	assert.False(t, New("@").HasHandle())
	assert.False(t, New("johnsmith@gmail.com").HasHandle())
	assert.False(t, New("é@bob").HasHandle())
	assert.False(t, New("日本@bob").HasHandle())
	assert.True(t, New("café @bob").HasHandle())
}

func TestName(t *testing.T) {
	assert.True(t, New("John Doe").HasName())
	assert.True(t, New("signed, Mary Ann Smith").HasName())
	assert.True(t, New("Ronald McDonald").HasName())
	assert.False(t, New("John").HasName())
	assert.False(t, New("john doe").HasName())
	assert.False(t, New("John  Doe").HasName())
}

func TestStreetAddress(t *testing.T) {
	assert.True(t, New("1234 Nowhere Street").HasStreetAddress())
	assert.True(t, New("ship to 42 Old Mill Road please").HasStreetAddress())
	assert.True(t, New("7 Elm Avenue").HasStreetAddress())
	assert.True(t, New("42 McKinley Avenue").HasStreetAddress())
	assert.False(t, New("Nowhere Street").HasStreetAddress())
	assert.False(t, New("1234 Nowhere").HasStreetAddress())
	assert.False(t, New("1234 nowhere street").HasStreetAddress())
}

func TestSpansAreOrdered(t *testing.T) {
	text := "Call 970-555-1212 or ping @bob"
	spans := New(text).Spans()
	require.Len(t, spans, 2)
	assert.Equal(t, Span{Start: 5, End: 17, Category: types.CategoryPhone}, spans[0])
	assert.Equal(t, Span{Start: 26, End: 30, Category: types.CategoryHandle}, spans[1])
	assert.Equal(t, "@bob", text[spans[1].Start:spans[1].End])
}

func TestWholeStringSpan(t *testing.T) {
	spans := New("10.1.2.3").Spans()
	require.Len(t, spans, 1)
	assert.Equal(t, Span{Start: 0, End: 8, Category: types.CategoryIPv4}, spans[0])
}

func TestVerdictJSON(t *testing.T) {
	data, err := json.Marshal(NewVerdict(types.CategoryEmail, types.CategoryPhone))
	require.NoError(t, err)
	assert.JSONEq(t, `["phone","email"]`, string(data))

	data, err = json.Marshal(Verdict{})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
	assert.Equal(t, "none", Verdict{}.String())
}
