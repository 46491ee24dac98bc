package quiz

import "github.com/abhisek/casefile/internal/i18n"

func txt(en, vi string) i18n.Text {
	return i18n.Text{i18n.English: en, i18n.Vietnamese: vi}
}

func singleQ() *SelectQuestion {
	return &SelectQuestion{
		Base:    Base{ID: "s1", Part: "part1", Prompt: txt("Which series is SCARA?", "Dòng nào là SCARA?")},
		Options: []i18n.Text{txt("C4", "C4"), txt("G6", "G6"), txt("S5", "S5")},
		Correct: []int{1},
	}
}

func multiQ() *SelectQuestion {
	return &SelectQuestion{
		Base:     Base{ID: "m1", Part: "part1"},
		Multiple: true,
		Options:  []i18n.Text{txt("a", "a"), txt("b", "b"), txt("c", "c"), txt("d", "d")},
		Correct:  []int{0, 2},
	}
}

func fillQ() *FillInQuestion {
	return &FillInQuestion{
		Base: Base{ID: "f1", Part: "part2"},
		Blanks: []Blank{
			{ID: 0, Correct: txt("single-phase", "một pha")},
			{ID: 1, Correct: txt("AC 200V", "AC 200V")},
		},
	}
}

func orderQ() *OrderingQuestion {
	return &OrderingQuestion{
		Base: Base{ID: "o1", Part: "part3"},
		Subs: []SubQuestion{
			{Title: txt("Power on", "Bật nguồn"), Steps: []Step{{ID: 2}, {ID: 0}, {ID: 1}}},
			{Title: txt("Power off", "Tắt nguồn"), Steps: []Step{{ID: 1}, {ID: 0}}},
		},
	}
}
