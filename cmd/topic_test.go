package cmd

import (
	"strings"
	"testing"

	"github.com/etnz/drip/docs"
)

func TestTopicUsage_ListsEveryTopic(t *testing.T) {
	topics, err := docs.GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	usage := (&topicCmd{}).Usage()
	for _, topic := range topics {
		if topic == "readme" {
			continue
		}
		if !strings.Contains(usage, "\n  "+topic+" ") {
			t.Errorf("topic usage does not list %q:\n%s", topic, usage)
		}
	}
}
