// Copyright (c) 2026 Front-Fusion Labs <hello@frontfusion.dev>
// All rights reserved. See LICENSE for details.

package assemble

// scaffoldFiles are the fixed auxiliary files of a React project: entry
// bootstrap, style entry, container markup, and build descriptors pinned
// to known-good versions. They are regenerated from these templates on
// every assembly, never edited by generation or theming.
var scaffoldFiles = map[string]string{
	"src/main.jsx": `import React from 'react'
import ReactDOM from 'react-dom/client'
import App from './App'
import './index.css'

ReactDOM.createRoot(document.getElementById('root')).render(
  <React.StrictMode>
    <App />
  </React.StrictMode>
)`,

	"src/index.css": `@tailwind base;
@tailwind components;
@tailwind utilities;`,

	"tailwind.config.js": `/** @type {import('tailwindcss').Config} */
export default {
  content: [
    "./index.html",
    "./src/**/*.{js,ts,jsx,tsx}",
  ],
  theme: {
    extend: {},
  },
  plugins: [
    require('@tailwindcss/forms'),
  ],
}`,

	"index.html": `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Generated UI</title>
  </head>
  <body>
    <div id="root"></div>
    <script type="module" src="/src/main.jsx"></script>
  </body>
</html>`,

	"vite.config.js": `import { defineConfig } from 'vite'
import react from '@vitejs/plugin-react'

export default defineConfig({
  plugins: [react()],
})`,

	"package.json": `{
  "name": "generated-ui",
  "private": true,
  "version": "0.0.0",
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "vite build",
    "preview": "vite preview"
  },
  "dependencies": {
    "react": "^18.2.0",
    "react-dom": "^18.2.0",
    "tailwindcss": "^3.3.0",
    "@tailwindcss/forms": "^0.5.7"
  },
  "devDependencies": {
    "@vitejs/plugin-react": "^4.2.0",
    "vite": "^5.0.0"
  }
}`,
}

// ScaffoldPaths returns the fixed auxiliary file paths, for callers that
// need to distinguish scaffold files from generated content.
func ScaffoldPaths() []string {
	paths := make([]string, 0, len(scaffoldFiles))
	for p := range scaffoldFiles {
		paths = append(paths, p)
	}
	return paths
}
