package game

import (
	"context"
	"fmt"
	"strings"
)

// ClueBank holds hand-written clues for the curated words
var ClueBank = map[string][]string{
	"school":      {"A place where students learn.", "It has classrooms and teachers.", "You go here for education."},
	"pencil":      {"You use this for writing.", "It is made of wood and graphite.", "You sharpen it when the tip is dull."},
	"teacher":     {"This person helps students learn.", "They explain lessons in class.", "Students ask this person questions."},
	"planet":      {"It moves around a star.", "Earth is one of these.", "It is a large object in space."},
	"forest":      {"A large area filled with trees.", "Many animals live here.", "It is bigger than a garden or park."},
	"garden":      {"A place where plants are grown.", "You may find flowers and vegetables here.", "It can be in front of a house."},
	"friend":      {"Someone you like and trust.", "You enjoy spending time together.", "A close companion."},
	"python":      {"A popular programming language.", "It is also the name of a snake.", "People use it to write code."},
	"robot":       {"A machine that can do tasks.", "It may move and follow instructions.", "Used in factories and science labs."},
	"future":      {"The time that has not happened yet.", "It comes after today and tomorrow.", "People plan for this time."},
	"science":     {"This subject asks how things work.", "It includes experiments and observations.", "You learn this in a lab and classroom."},
	"energy":      {"This is needed to do work or move.", "Food gives your body this.", "Electricity is a common form of this."},
	"library":     {"A quiet place with many books.", "People read and study here.", "You can borrow books from this place."},
	"picture":     {"This shows an image of something.", "It can be drawn or taken with a camera.", "Another word is a photo or drawing."},
	"student":     {"A person who learns in school.", "This person attends classes.", "Teachers teach this person."},
	"computer":    {"An electronic machine for work and play.", "It has a screen and keyboard.", "You can code and browse on this device."},
	"keyboard":    {"An input device with many keys.", "You press letters and numbers on it.", "You use it to type on a computer."},
	"battery":     {"This stores power.", "Phones and toys often need this.", "It provides electricity to devices."},
	"language":    {"A system of words and grammar.", "People use it to communicate.", "English, Tamil, and Hindi are examples."},
	"festival":    {"A special celebration event.", "People gather with joy and traditions.", "It may include music, food, and decorations."},
	"history":     {"This is about past events.", "You learn about old people and places.", "It explains what happened long ago."},
	"morning":     {"A part of the day.", "It comes after night.", "It is the time before noon."},
	"evening":     {"A part of the day near sunset.", "It comes after afternoon.", "People often relax during this time."},
	"reading":     {"An activity with books or text.", "You use your eyes to understand words.", "You do this with stories and lessons."},
	"writing":     {"You create words and sentences.", "You can do this with a pen or keyboard.", "It is the opposite skill of reading."},
	"respect":     {"A value shown in good behavior.", "You show it by being polite and kind.", "You should give this to elders and others."},
	"courage":     {"This means being brave.", "You show it when facing fear.", "Heroes often have this quality."},
	"holiday":     {"A day without regular school or work.", "People rest, travel, or celebrate.", "It is a special break day."},
	"practice":    {"Doing something again and again.", "It helps you improve a skill.", "You need this to get better."},
	"creative":    {"This describes new and original ideas.", "Artists and inventors often are this.", "It means using imagination."},
	"learning":    {"The process of gaining knowledge.", "This happens at school and at home.", "Reading and listening help with this."},
	"technology":  {"Tools and machines made by humans.", "It includes computers and the internet.", "Modern life uses this every day."},
	"curiosity":   {"A strong desire to know more.", "It makes you ask questions.", "Scientists and children often show this."},
	"imagination": {"The ability to form ideas in your mind.", "You use it while creating stories.", "It helps you think beyond what you see."},
	"celebrate":   {"To mark a happy event.", "People do this at birthdays and festivals.", "It often includes joy, food, and fun."},
	"together":    {"This means with one another.", "Friends or family can do things this way.", "It is the opposite of alone."},
	"solution":    {"An answer to a problem.", "You find this after thinking carefully.", "Math questions often have this."},
	"problem":     {"A difficulty that needs solving.", "It can be in math or daily life.", "You look for a solution to this."},
}

// StaticSource answers from a fixed clue bank
type StaticSource struct {
	bank map[string][]string
}

func NewStaticSource(bank map[string][]string) *StaticSource {
	if bank == nil {
		bank = ClueBank
	}
	return &StaticSource{bank: bank}
}

func (s *StaticSource) FetchHints(_ context.Context, word string, count int) (string, error) {
	clues, ok := s.bank[strings.ToLower(word)]
	if !ok || len(clues) < count {
		return "", fmt.Errorf("%w: no clues for word", ErrProviderUnavailable)
	}
	return FormatHints(clues[:count]), nil
}
