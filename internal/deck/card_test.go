package deck

import "testing"

func TestCardString(t *testing.T) {
	tests := []struct {
		card     Card
		expected string
	}{
		{NewCard(Spades, Ace), "A♠"},
		{NewCard(Hearts, Ten), "10♥"},
		{NewCard(Diamonds, Two), "2♦"},
		{NewCard(Clubs, King), "K♣"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.expected {
			t.Errorf("Expected %s, got %s", tt.expected, got)
		}
	}
}

func TestCardPoints(t *testing.T) {
	tests := []struct {
		rank     Rank
		expected int
	}{
		{Two, 2},
		{Nine, 9},
		{Ten, 10},
		{Jack, 10},
		{Queen, 10},
		{King, 10},
		{Ace, 11},
	}

	for _, tt := range tests {
		card := NewCard(Spades, tt.rank)
		if got := card.Points(); got != tt.expected {
			t.Errorf("Expected %s to be worth %d, got %d", card, tt.expected, got)
		}
	}
}

func TestCardIsRed(t *testing.T) {
	if !NewCard(Hearts, Five).IsRed() {
		t.Error("Hearts should be red")
	}
	if !NewCard(Diamonds, Five).IsRed() {
		t.Error("Diamonds should be red")
	}
	if NewCard(Spades, Five).IsRed() {
		t.Error("Spades should not be red")
	}
	if NewCard(Clubs, Five).IsRed() {
		t.Error("Clubs should not be red")
	}
}

func TestCardClassification(t *testing.T) {
	if !NewCard(Spades, Ace).IsAce() {
		t.Error("Ace should be an ace")
	}
	if NewCard(Spades, King).IsAce() {
		t.Error("King should not be an ace")
	}
	for _, rank := range []Rank{Jack, Queen, King} {
		if !NewCard(Spades, rank).IsFaceCard() {
			t.Errorf("%s should be a face card", rank)
		}
	}
	if NewCard(Spades, Ten).IsFaceCard() {
		t.Error("Ten should not be a face card")
	}
	if NewCard(Spades, Ace).IsFaceCard() {
		t.Error("Ace should not be a face card")
	}
}
