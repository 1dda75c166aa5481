package analytics_test

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/analytics"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/squad"
	"github.com/smartystreets/goconvey/convey"
)

func player(name string, form, price, ownership int) squad.Player {
	return squad.Player{Name: name, Team: "India", Role: squad.RoleBatsman, Form: form, Price: price, Ownership: ownership}
}

func randomPlayers(seed uint64, n int) []squad.Player {
	r := rand.New(rand.NewPCG(seed, seed))
	out := make([]squad.Player, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, squad.Player{
			Name:      "p" + strconv.Itoa(i),
			Form:      r.IntN(101),
			Price:     r.IntN(101),
			Ownership: r.IntN(96),
		})
	}
	return out
}

func TestCaptain(t *testing.T) {
	convey.Convey("Given a ranked player pool", t, func() {
		players := []squad.Player{
			player("Kohli", 92, 95, 70),
			player("Gill", 88, 85, 45),
			player("Pant", 86, 80, 22),
			player("Rahul", 90, 88, 60),
			player("Jadeja", 70, 75, 10),
		}

		convey.Convey("When picking captains", func() {
			pick, ok := analytics.Captain(players)

			convey.So(ok, convey.ShouldBeTrue)
			convey.Convey("Then the safe pick has the best form", func() {
				convey.So(pick.Safe.Name, convey.ShouldEqual, "Kohli")
			})
			convey.Convey("Then the differential is the first low-owned player in the top four", func() {
				convey.So(pick.HasDifferential, convey.ShouldBeTrue)
				convey.So(pick.Differential.Name, convey.ShouldEqual, "Pant")
			})
		})

		convey.Convey("When nobody in ranks two to four is under 30% owned", func() {
			pool := []squad.Player{
				player("A", 95, 90, 10),
				player("B", 90, 90, 60),
				player("C", 85, 90, 55),
			}
			pick, _ := analytics.Captain(pool)

			convey.Convey("Then rank two is the differential and differs from the safe pick", func() {
				convey.So(pick.Differential.Name, convey.ShouldEqual, "B")
				convey.So(pick.Differential.Name, convey.ShouldNotEqual, pick.Safe.Name)
			})
		})
	})

	convey.Convey("Given exactly one player", t, func() {
		pick, ok := analytics.Captain([]squad.Player{player("Solo", 80, 80, 20)})

		convey.Convey("Then only a safe pick is produced", func() {
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(pick.Safe.Name, convey.ShouldEqual, "Solo")
			convey.So(pick.HasDifferential, convey.ShouldBeFalse)
		})
	})

	convey.Convey("Given no players", t, func() {
		_, ok := analytics.Captain(nil)
		convey.So(ok, convey.ShouldBeFalse)
	})

	convey.Convey("Given random pools of at least two players", t, func() {
		for seed := uint64(1); seed <= 50; seed++ {
			pool := randomPlayers(seed, 2+int(seed%20))
			pick, ok := analytics.Captain(pool)
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(pick.HasDifferential, convey.ShouldBeTrue)

			ranked := analytics.RankByForm(pool)
			top := ranked[:min(4, len(ranked))]
			for _, p := range top {
				convey.So(pick.Safe.Form, convey.ShouldBeGreaterThanOrEqualTo, p.Form)
			}
			convey.So(pick.Differential, convey.ShouldNotResemble, ranked[0])
		}
	})
}

func TestDifferentials(t *testing.T) {
	convey.Convey("Given players around the thresholds", t, func() {
		players := []squad.Player{
			player("owned-25", 90, 80, 25),
			player("form-70", 70, 80, 5),
			player("pick-20", 80, 80, 20),
			player("pick-5", 71, 80, 5),
			player("pick-10", 95, 80, 10),
			player("pick-24", 76, 80, 24),
		}

		got := analytics.Differentials(players)

		convey.Convey("Then boundary players are excluded and the rest sorted by ownership", func() {
			convey.So(len(got), convey.ShouldEqual, 3)
			convey.So(got[0].Name, convey.ShouldEqual, "pick-5")
			convey.So(got[1].Name, convey.ShouldEqual, "pick-10")
			convey.So(got[2].Name, convey.ShouldEqual, "pick-20")
		})
	})

	convey.Convey("Given random pools", t, func() {
		for seed := uint64(1); seed <= 100; seed++ {
			for _, p := range analytics.Differentials(randomPlayers(seed, 30)) {
				convey.So(p.Ownership, convey.ShouldBeLessThan, 25)
				convey.So(p.Form, convey.ShouldBeGreaterThan, 70)
			}
		}
	})

	convey.Convey("Given only highly owned players", t, func() {
		got := analytics.Differentials([]squad.Player{player("a", 95, 90, 60)})
		convey.So(got, convey.ShouldBeEmpty)
	})
}

func TestRiskLevels(t *testing.T) {
	convey.Convey("Risk grades follow form thresholds", t, func() {
		convey.So(analytics.CaptainRisk(player("a", 86, 0, 0)), convey.ShouldEqual, "Low Risk")
		convey.So(analytics.CaptainRisk(player("a", 85, 0, 0)), convey.ShouldEqual, "Medium Risk")
		convey.So(analytics.DifferentialRisk(player("a", 86, 0, 0)), convey.ShouldEqual, "Low Risk")
		convey.So(analytics.DifferentialRisk(player("a", 76, 0, 0)), convey.ShouldEqual, "Medium Risk")
		convey.So(analytics.DifferentialRisk(player("a", 75, 0, 0)), convey.ShouldEqual, "High Risk")
	})
}

func TestCompare(t *testing.T) {
	convey.Convey("Given two close players", t, func() {
		a := player("A", 90, 90, 40)
		b := player("B", 90, 72, 20)
		cmp, ok := analytics.Compare([]squad.Player{a, b})

		convey.So(ok, convey.ShouldBeTrue)
		convey.Convey("Then equal form is not decisive", func() {
			convey.So(cmp.FormDecided, convey.ShouldBeFalse)
		})
		convey.Convey("Then the cheaper per form point wins on value", func() {
			convey.So(cmp.BetterValue.Name, convey.ShouldEqual, "B")
		})
		convey.Convey("Then the lower owned player is the differential", func() {
			convey.So(cmp.Differential.Name, convey.ShouldEqual, "B")
		})
	})

	convey.Convey("Given one player", t, func() {
		_, ok := analytics.Compare([]squad.Player{player("A", 90, 90, 40)})
		convey.So(ok, convey.ShouldBeFalse)
	})
}

func TestOwnership(t *testing.T) {
	convey.Convey("Ownership bands are split at 25 and 50", t, func() {
		bands := analytics.Ownership([]squad.Player{
			player("a", 0, 0, 51),
			player("b", 0, 0, 50),
			player("c", 0, 0, 25),
			player("d", 0, 0, 24),
		})
		convey.So(bands, convey.ShouldResemble, analytics.OwnershipBands{High: 1, Medium: 2, Low: 1})
	})
}
