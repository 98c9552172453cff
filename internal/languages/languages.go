// Package languages holds the static catalog of languages the editor
// supports, including the starter snippet and executor id for each.
package languages

import "math/rand"

// DefaultLanguage is the language tag assigned to freshly created rooms.
const DefaultLanguage = "javascript"

// Language describes one selectable editor language.
type Language struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Extension   string `json:"extension"`
	Judge0ID    int    `json:"judge0Id"`
	DefaultCode string `json:"defaultCode"`
}

var catalog = []Language{
	{
		ID:        "javascript",
		Name:      "JavaScript",
		Extension: "js",
		Judge0ID:  63,
		DefaultCode: `// JavaScript Code
console.log("Hello, World!");

function fibonacci(n) {
  if (n <= 1) return n;
  return fibonacci(n - 1) + fibonacci(n - 2);
}

console.log("Fibonacci(10):", fibonacci(10));`,
	},
	{
		ID:        "python",
		Name:      "Python",
		Extension: "py",
		Judge0ID:  71,
		DefaultCode: `# Python Code
print("Hello, World!")

def fibonacci(n):
    if n <= 1:
        return n
    return fibonacci(n - 1) + fibonacci(n - 2)

print(f"Fibonacci(10): {fibonacci(10)}")`,
	},
	{
		ID:        "java",
		Name:      "Java",
		Extension: "java",
		Judge0ID:  62,
		DefaultCode: `// Java Code
public class Main {
    public static void main(String[] args) {
        System.out.println("Hello, World!");
        System.out.println("Fibonacci(10): " + fibonacci(10));
    }

    static int fibonacci(int n) {
        if (n <= 1) return n;
        return fibonacci(n - 1) + fibonacci(n - 2);
    }
}`,
	},
	{
		ID:        "cpp",
		Name:      "C++",
		Extension: "cpp",
		Judge0ID:  54,
		DefaultCode: `// C++ Code
#include <iostream>
using namespace std;

int fibonacci(int n) {
    if (n <= 1) return n;
    return fibonacci(n - 1) + fibonacci(n - 2);
}

int main() {
    cout << "Hello, World!" << endl;
    cout << "Fibonacci(10): " << fibonacci(10) << endl;
    return 0;
}`,
	},
	{
		ID:        "go",
		Name:      "Go",
		Extension: "go",
		Judge0ID:  60,
		DefaultCode: `// Go Code
package main

import "fmt"

func fibonacci(n int) int {
    if n <= 1 {
        return n
    }
    return fibonacci(n-1) + fibonacci(n-2)
}

func main() {
    fmt.Println("Hello, World!")
    fmt.Printf("Fibonacci(10): %d\n", fibonacci(10))
}`,
	},
}

// All returns every supported language.
func All() []Language {
	out := make([]Language, len(catalog))
	copy(out, catalog)
	return out
}

// ByID returns the language with the given id.
func ByID(id string) (Language, bool) {
	for _, lang := range catalog {
		if lang.ID == id {
			return lang, true
		}
	}
	return Language{}, false
}

var userColors = []string{
	"#3B82F6", // blue
	"#EF4444", // red
	"#10B981", // green
	"#F59E0B", // yellow
	"#8B5CF6", // purple
	"#EC4899", // pink
	"#06B6D4", // cyan
	"#F97316", // orange
}

// RandomColor picks a display color for users that joined without one.
func RandomColor() string {
	return userColors[rand.Intn(len(userColors))]
}
