package export

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Dan9191/fitbyte/internal/models"
	"github.com/beevik/etree"
)

func writeXML(w io.Writer, d *Data) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("fitbyte")
	root.CreateAttr("version", d.Version)
	root.CreateAttr("exportedAt", d.ExportedAt.UTC().Format(time.RFC3339))
	root.CreateAttr("tool", d.Tool)

	user := root.CreateElement("user")
	user.CreateAttr("id", itoa(d.User.ID))
	text(user, "username", d.User.Username)
	text(user, "email", d.User.Email)
	text(user, "createdAt", d.User.CreatedAt.UTC().Format(time.RFC3339))

	workouts := root.CreateElement("workouts")
	for _, wo := range d.Workouts {
		el := workouts.CreateElement("workout")
		el.CreateAttr("id", itoa(wo.ID))
		text(el, "name", wo.Name)
		text(el, "createdAt", wo.CreatedAt.UTC().Format(time.RFC3339))
		exercises := el.CreateElement("exercises")
		for _, ex := range wo.Exercises {
			writeExercise(exercises.CreateElement("exercise"), ex)
		}
	}

	logs := root.CreateElement("workoutLogs")
	for _, l := range d.WorkoutLogs {
		el := logs.CreateElement("log")
		el.CreateAttr("id", itoa(l.ID))
		el.CreateAttr("workoutId", itoa(l.WorkoutID))
		el.CreateAttr("date", l.LoggedOn)
		el.SetText(l.LoggedAt.UTC().Format(time.RFC3339))
	}

	goals := root.CreateElement("goals")
	for _, g := range d.Goals {
		el := goals.CreateElement("goal")
		el.CreateAttr("id", itoa(g.ID))
		el.CreateAttr("completed", strconv.FormatBool(g.IsCompleted))
		text(el, "title", g.Title)
		text(el, "createdAt", g.CreatedAt.UTC().Format(time.RFC3339))
	}

	nutrition := root.CreateElement("nutrition")
	for _, n := range d.Nutrition {
		el := nutrition.CreateElement("entry")
		el.CreateAttr("id", itoa(n.ID))
		el.CreateAttr("date", n.Date)
		el.CreateAttr("mealType", string(n.MealType))
		text(el, "foodName", n.FoodName)
		text(el, "calories", strconv.Itoa(n.Calories))
		text(el, "protein", ftoa(n.Protein))
		text(el, "carbs", ftoa(n.Carbs))
		text(el, "fats", ftoa(n.Fats))
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("encode xml: %w", err)
	}
	return nil
}

// writeExercise emits only the fields that are set.
func writeExercise(el *etree.Element, ex models.Exercise) {
	el.CreateAttr("id", itoa(ex.ID))
	el.CreateAttr("type", string(ex.Type))
	text(el, "name", ex.Name)
	if ex.Sets != nil {
		text(el, "sets", strconv.Itoa(*ex.Sets))
	}
	if ex.Reps != nil {
		text(el, "reps", strconv.Itoa(*ex.Reps))
	}
	if ex.Weight != nil {
		text(el, "weight", ftoa(*ex.Weight))
	}
	if ex.Distance != nil {
		text(el, "distance", ftoa(*ex.Distance))
	}
	if ex.Duration != nil {
		text(el, "duration", ftoa(*ex.Duration))
	}
	if ex.Speed != nil {
		text(el, "speed", ftoa(*ex.Speed))
	}
	if ex.Intensity != nil {
		text(el, "intensity", *ex.Intensity)
	}
}

func text(parent *etree.Element, tag, value string) {
	parent.CreateElement(tag).SetText(value)
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
