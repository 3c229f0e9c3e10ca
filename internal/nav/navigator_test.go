package nav

import (
	"errors"
	"testing"
	"time"

	"github.com/iburimskiy/portfolio/internal/schedule"
)

var fullOrder = []string{"hero", "about", "skills", "journey", "projects", "resume", "contact"}

func newNav(t *testing.T, order []string) (*Navigator, *schedule.Scheduler) {
	t.Helper()
	s := schedule.New()
	n, err := New(order, s)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return n, s
}

func settle(s *schedule.Scheduler) {
	for i := 0; i < 300; i++ {
		s.Advance(10 * time.Millisecond)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(nil, schedule.New()); !errors.Is(err, ErrEmptyOrder) {
		t.Errorf("expected ErrEmptyOrder, got %v", err)
	}
	if _, err := New([]string{"hero", "hero"}, schedule.New()); err == nil {
		t.Error("expected duplicate section error")
	}
}

func TestInitialState(t *testing.T) {
	n, _ := newNav(t, fullOrder)
	if n.Current() != "hero" {
		t.Errorf("Current() = %q", n.Current())
	}
	if !n.View("hero").Active || n.View("about").Active {
		t.Error("only the first section should be active")
	}
	if n.Transitioning() {
		t.Error("should not start transitioning")
	}
}

func TestRequestSwitchSequence(t *testing.T) {
	n, s := newNav(t, fullOrder)
	var switched [][2]string
	n.OnSwitch = func(from, to string) { switched = append(switched, [2]string{from, to}) }

	ok, err := n.RequestSwitch("about")
	if !ok || err != nil {
		t.Fatalf("RequestSwitch = %v, %v", ok, err)
	}
	if n.Current() != "about" {
		t.Errorf("current should update immediately, got %q", n.Current())
	}
	if !n.Transitioning() {
		t.Error("expected transitioning")
	}
	if len(switched) != 1 || switched[0] != [2]string{"hero", "about"} {
		t.Errorf("OnSwitch calls = %v", switched)
	}

	s.Advance(399 * time.Millisecond)
	if !n.View("hero").Active || n.View("about").Active {
		t.Error("sections should not swap before the retire delay")
	}
	s.Advance(time.Millisecond)
	if n.View("hero").Active || !n.View("about").Active {
		t.Error("sections should swap at the retire delay")
	}
	if !n.Transitioning() {
		t.Error("guard should hold until settled")
	}
	s.Advance(800 * time.Millisecond)
	if n.Transitioning() {
		t.Error("guard should clear 800ms after activation")
	}
}

func TestRequestSwitchSameTargetIsNoop(t *testing.T) {
	n, s := newNav(t, fullOrder)
	for i := 0; i < 2; i++ {
		ok, err := n.RequestSwitch("hero")
		if ok || err != nil {
			t.Fatalf("call %d: RequestSwitch = %v, %v", i, ok, err)
		}
	}
	if n.Transitioning() || s.Pending() != 0 {
		t.Error("no transition should be scheduled")
	}
	if v := n.View("hero"); !v.Active || v.Opacity != 1 {
		t.Errorf("hero view changed: offset %v, opacity %v", v.Offset, v.Opacity)
	}
}

func TestRequestSwitchRejectedWhileTransitioning(t *testing.T) {
	n, s := newNav(t, fullOrder)
	if ok, _ := n.RequestSwitch("skills"); !ok {
		t.Fatal("first switch rejected")
	}
	for _, target := range []string{"about", "hero", "contact", "skills"} {
		if ok, err := n.RequestSwitch(target); ok || err != nil {
			t.Errorf("RequestSwitch(%q) during transition = %v, %v", target, ok, err)
		}
	}
	if n.Current() != "skills" {
		t.Errorf("Current() = %q", n.Current())
	}
	settle(s)
	if ok, _ := n.RequestSwitch("about"); !ok {
		t.Error("switch after settling should be accepted")
	}
}

func TestRequestSwitchUnknownSection(t *testing.T) {
	n, s := newNav(t, fullOrder)
	ok, err := n.RequestSwitch("blog")
	if ok || !errors.Is(err, ErrUnknownSection) {
		t.Errorf("RequestSwitch(blog) = %v, %v", ok, err)
	}
	if n.Transitioning() || s.Pending() != 0 || n.Current() != "hero" {
		t.Error("unknown target must not change state")
	}
}

func TestNextPrevWrap(t *testing.T) {
	n, s := newNav(t, []string{"hero", "about", "skills"})

	if ok, _ := n.Prev(); !ok {
		t.Fatal("Prev rejected")
	}
	if n.Current() != "skills" {
		t.Errorf("Prev from first = %q, want skills", n.Current())
	}
	settle(s)

	if ok, _ := n.Next(); !ok {
		t.Fatal("Next rejected")
	}
	if n.Current() != "hero" {
		t.Errorf("Next from last = %q, want hero", n.Current())
	}
	settle(s)

	n.Next()
	if n.Current() != "about" {
		t.Errorf("Next = %q, want about", n.Current())
	}
	if ok, _ := n.Next(); ok {
		t.Error("Next during transition should be rejected")
	}
}

func TestRegisteredAnimationFires(t *testing.T) {
	n, s := newNav(t, fullOrder)
	var firedAt time.Duration
	if err := n.Register("skills", 500*time.Millisecond, func() { firedAt = s.Now() }); err != nil {
		t.Fatal(err)
	}
	if err := n.Register("nope", 0, func() {}); !errors.Is(err, ErrUnknownSection) {
		t.Errorf("Register unknown = %v", err)
	}

	n.RequestSwitch("skills")
	settle(s)

	if firedAt != 900*time.Millisecond {
		t.Errorf("animation fired at %v, want 900ms", firedAt)
	}
}

func TestViewsEase(t *testing.T) {
	n, s := newNav(t, fullOrder)
	n.RequestSwitch("about")

	hero := n.View("hero")
	prevOffset, prevOpacity := hero.Offset, hero.Opacity
	for i := 0; i < 20; i++ {
		n.Update(10 * time.Millisecond)
		if hero.Offset > prevOffset || hero.Opacity > prevOpacity {
			t.Fatalf("frame %d: hero moved backwards: %+v", i, *hero)
		}
		prevOffset, prevOpacity = hero.Offset, hero.Opacity
	}
	if hero.Offset >= -0.5 || hero.Offset < -1 || hero.Opacity <= 0 || hero.Opacity >= 0.5 {
		t.Errorf("hero after 200ms = offset %v, opacity %v", hero.Offset, hero.Opacity)
	}

	s.Advance(400 * time.Millisecond)
	about := n.View("about")
	if about.Opacity != 1 || about.Offset != 0 {
		t.Errorf("about after activation = offset %v, opacity %v", about.Offset, about.Opacity)
	}
	n.Update(time.Second)
	if hero.Opacity != 0 || hero.Offset != 0 {
		t.Errorf("hero after retire = offset %v, opacity %v", hero.Offset, hero.Opacity)
	}
	if about.Opacity != 1 || about.Offset != 0 {
		t.Errorf("about should stay in place, got offset %v, opacity %v", about.Offset, about.Opacity)
	}
}

func TestJump(t *testing.T) {
	n, s := newNav(t, fullOrder)
	if err := n.Jump("projects"); err != nil {
		t.Fatal(err)
	}
	if n.Current() != "projects" || !n.View("projects").Active || n.View("hero").Active {
		t.Error("jump should show the section at once")
	}
	if s.Pending() != 0 {
		t.Error("jump should not schedule anything")
	}
	if err := n.Jump("blog"); !errors.Is(err, ErrUnknownSection) {
		t.Errorf("Jump(blog) = %v", err)
	}
	n.RequestSwitch("hero")
	if err := n.Jump("about"); err == nil {
		t.Error("jump during a transition should fail")
	}
}
